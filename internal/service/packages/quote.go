package packages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/pkg/apperror"
)

// computeQuote totals the base price plus the additional price of each
// selected optional service. Unknown service IDs and services already
// included in the base reject the request so the client cannot be quoted
// for something the package does not sell.
func computeQuote(pkg *model.Package, rows []*model.PackageService, serviceIDs []int64) (*model.PackageQuote, error) {
	byService := make(map[int64]*model.PackageService, len(rows))
	for _, row := range rows {
		byService[row.ServiceID] = row
	}

	total, err := parseCents(pkg.BasePrice)
	if err != nil {
		return nil, apperror.Internal("failed to quote package", err)
	}

	for _, id := range serviceIDs {
		row, ok := byService[id]
		if !ok {
			return nil, apperror.BadRequest(fmt.Sprintf("service %d is not part of this package", id))
		}
		if row.Included {
			continue
		}
		extra, err := parseCents(row.AdditionalPrice)
		if err != nil {
			return nil, apperror.Internal("failed to quote package", err)
		}
		total += extra
	}

	return &model.PackageQuote{
		PackageID:  pkg.ID,
		BasePrice:  pkg.BasePrice,
		Total:      formatCents(total),
		ServiceIDs: serviceIDs,
	}, nil
}

// parseCents reads a NUMERIC(.., 2) string into integer cents. Prices never
// go through floats so totals stay exact.
func parseCents(price string) (int64, error) {
	whole, frac, _ := strings.Cut(strings.TrimSpace(price), ".")

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", price, err)
	}

	var cents int64
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid price %q: %w", price, err)
		}
	}

	if units < 0 || strings.HasPrefix(whole, "-") {
		return units*100 - cents, nil
	}
	return units*100 + cents, nil
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
