package pricing

import (
	"math/big"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bulbacards/packmint/internal/domain"
)

// maxFractionDigits caps the decimals shown for native amounts.
const maxFractionDigits = 4

var printer = message.NewPrinter(language.English)

// FormatWei renders a wei amount as grouped PLS, e.g. "90,000 PLS" or "0.5 PLS".
func FormatWei(wei *big.Int) string {
	if wei == nil {
		return "0 " + domain.NativeSymbol
	}

	neg := wei.Sign() < 0
	abs := new(big.Int).Abs(wei)

	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(domain.NativeDecimals), nil)
	whole, frac := new(big.Int).QuoRem(abs, unit, new(big.Int))

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if whole.IsInt64() {
		b.WriteString(printer.Sprintf("%d", whole.Int64()))
	} else {
		b.WriteString(whole.String())
	}

	if frac.Sign() > 0 {
		digits := frac.String()
		digits = strings.Repeat("0", domain.NativeDecimals-len(digits)) + digits
		if len(digits) > maxFractionDigits {
			digits = digits[:maxFractionDigits]
		}
		digits = strings.TrimRight(digits, "0")
		if digits != "" {
			b.WriteByte('.')
			b.WriteString(digits)
		}
	}

	b.WriteByte(' ')
	b.WriteString(domain.NativeSymbol)
	return b.String()
}
