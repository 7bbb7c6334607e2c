package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventosya/marketplace-api/internal/model"
	paymentService "github.com/eventosya/marketplace-api/internal/service/payment"
)

type stubAliasRepo struct {
	aliases map[string]*model.PaymentAlias
}

func (r *stubAliasRepo) ListActive(context.Context) ([]*model.PaymentAlias, error) {
	out := make([]*model.PaymentAlias, 0, len(r.aliases))
	for _, a := range r.aliases {
		if a.Active {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAliasRepo) GetByAlias(_ context.Context, alias string) (*model.PaymentAlias, error) {
	return r.aliases[alias], nil
}

func (r *stubAliasRepo) Create(_ context.Context, alias *model.PaymentAlias) error {
	alias.ID = int64(len(r.aliases) + 1)
	r.aliases[alias.Alias] = alias
	return nil
}

func (r *stubAliasRepo) Update(context.Context, *model.PaymentAlias) error { return nil }
func (r *stubAliasRepo) Delete(context.Context, int64) error              { return nil }

func newTestEngine(repo *stubAliasRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	h := NewHandler(paymentService.NewService(repo, time.Minute))
	h.RegisterRoutes(engine.Group("/api"))
	h.RegisterRedirect(engine)
	return engine
}

func TestRedirectKnownAlias(t *testing.T) {
	engine := newTestEngine(&stubAliasRepo{aliases: map[string]*model.PaymentAlias{
		"boda2025": {
			ID:         1,
			Alias:      "boda2025",
			PaymentURL: "https://pagos.example.com/boda2025",
			Active:     true,
		},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pay/boda2025", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://pagos.example.com/boda2025", w.Header().Get("Location"))
}

func TestRedirectUnknownAliasRendersErrorPage(t *testing.T) {
	engine := newTestEngine(&stubAliasRepo{aliases: map[string]*model.PaymentAlias{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pay/nope", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Enlace de pago no encontrado")
	assert.Contains(t, w.Body.String(), "nope")
}

func TestRedirectInactiveAliasIsNotFound(t *testing.T) {
	engine := newTestEngine(&stubAliasRepo{aliases: map[string]*model.PaymentAlias{
		"viejo": {
			ID:         2,
			Alias:      "viejo",
			PaymentURL: "https://pagos.example.com/viejo",
			Active:     false,
		},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pay/viejo", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetByAliasNotFoundJSON(t *testing.T) {
	engine := newTestEngine(&stubAliasRepo{aliases: map[string]*model.PaymentAlias{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payment-aliases/by-alias/nope", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"payment alias not found"}`, w.Body.String())
}
