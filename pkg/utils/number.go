package utils

import "fmt"

// FormatInvoiceNumber formats a sequential invoice number, e.g. "INV-0042".
func FormatInvoiceNumber(seq int64) string {
	return fmt.Sprintf("INV-%04d", seq)
}
