package packages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/pkg/apperror"
)

func testPackage() *model.Package {
	return &model.Package{ID: 7, ProviderID: 3, Name: "Boda Completa", BasePrice: "150000.00"}
}

func testPackageServices() []*model.PackageService {
	return []*model.PackageService{
		{ID: 1, PackageID: 7, ServiceID: 10, Included: true, AdditionalPrice: "0.00"},
		{ID: 2, PackageID: 7, ServiceID: 11, Included: false, AdditionalPrice: "25000.00"},
		{ID: 3, PackageID: 7, ServiceID: 12, Included: false, AdditionalPrice: "12500.50"},
	}
}

func TestComputeQuoteNoSelection(t *testing.T) {
	quote, err := computeQuote(testPackage(), testPackageServices(), nil)
	require.NoError(t, err)

	assert.Equal(t, "150000.00", quote.BasePrice)
	assert.Equal(t, "150000.00", quote.Total)
}

func TestComputeQuoteAddsOptionalServices(t *testing.T) {
	quote, err := computeQuote(testPackage(), testPackageServices(), []int64{11, 12})
	require.NoError(t, err)

	assert.Equal(t, "187500.50", quote.Total)
	assert.Equal(t, []int64{11, 12}, quote.ServiceIDs)
}

func TestComputeQuoteIncludedServiceAddsNothing(t *testing.T) {
	quote, err := computeQuote(testPackage(), testPackageServices(), []int64{10, 11})
	require.NoError(t, err)

	assert.Equal(t, "175000.00", quote.Total)
}

func TestComputeQuoteRejectsUnknownService(t *testing.T) {
	_, err := computeQuote(testPackage(), testPackageServices(), []int64{99})
	require.Error(t, err)

	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestParseCents(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"50000", 5000000},
		{"50000.00", 5000000},
		{"12500.50", 1250050},
		{"99.9", 9990},
		{"-10.25", -1025},
	}
	for _, tt := range tests {
		got, err := parseCents(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "150000.00", formatCents(15000000))
	assert.Equal(t, "0.05", formatCents(5))
	assert.Equal(t, "-10.25", formatCents(-1025))
}
