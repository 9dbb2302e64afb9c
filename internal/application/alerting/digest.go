package alerting

import (
	"fmt"
	"strings"

	"github.com/andikasp/atk-intel/internal/application/dto"
)

// BuildDigest renders urgent restock predictions into one aggregated alert
// message. Every recipient gets the same digest.
func BuildDigest(urgent []dto.PredictionDTO, leadTimeDays int) string {
	var b strings.Builder
	b.WriteString("*PERINGATAN RESTOCK ATK*\n\n")
	fmt.Fprintf(&b, "%d item diprediksi mencapai stok minimum dalam %d hari:\n\n", len(urgent), leadTimeDays)
	for i, p := range urgent {
		fmt.Fprintf(&b, "%d. %s: stok %d (min %d), sisa ±%d hari\n",
			i+1, p.ItemName, p.CurrentStock, p.MinStock, p.DaysUntilMin)
	}
	fmt.Fprintf(&b, "\nLead time pengadaan: %d hari. Mohon segera proses pemesanan.", leadTimeDays)
	return b.String()
}
