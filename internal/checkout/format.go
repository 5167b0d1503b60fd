package checkout

import "strings"

// FormatCardNumber оставляет только цифры и группирует их по четыре
func FormatCardNumber(in string) string {
	digits := digitsOf(in)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry оставляет только цифры и ставит '/' после каждой пары
func FormatExpiry(in string) string {
	digits := digitsOf(in)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%2 == 0 {
			b.WriteByte('/')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatCVV оставляет только цифры
func FormatCVV(in string) string {
	return string(digitsOf(in))
}

// MaskCard применяет маски ввода ко всем полям карты
func MaskCard(c CardData) CardData {
	return CardData{
		CardName:   strings.TrimSpace(c.CardName),
		CardNumber: FormatCardNumber(c.CardNumber),
		Expiry:     FormatExpiry(c.Expiry),
		CVV:        FormatCVV(c.CVV),
	}
}

func digitsOf(in string) []rune {
	out := make([]rune, 0, len(in))
	for _, r := range in {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return out
}
