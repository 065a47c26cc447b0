package extractor

import (
	"regexp"
	"strings"
)

// Field rule tables. Each table is an ordered list: rules are tried top to
// bottom and the first match wins, so more specific labels must precede the
// generic ones. Patterns assume text already canonicalized by the normalizer
// (half-width digits, single spaces), but label colons may still be
// full-width.

// StoreNameField recovers the store name from an explicit label, the line
// above a receipt-title keyword, a short line above a postal-code line, or a
// trade-name label. Falls back to the first non-blank line of the receipt.
var StoreNameField = Field{
	Name: "store_name",
	Rules: []Rule{
		{Pattern: regexp.MustCompile(`(?m)^\s*店舗?名\s*[:：]\s*(.+)$`)},
		{Pattern: regexp.MustCompile(`(?m)^([^\n]+)\n[^\n]*(?:領収書|領収証|レシート)`)},
		{Pattern: regexp.MustCompile(`(?m)^(\S[^\n]{0,18})\n(?:〒\s*)?\d{3}-\d{4}`)},
		{Pattern: regexp.MustCompile(`(?m)^\s*(?:屋号|商号|事業者名)\s*[:：]\s*(.+)$`)},
	},
	Fallback: firstNonBlankLine,
}

// DateField recovers the transaction date. All rules share the date
// processor, which emits canonical YYYY-MM-DD. There is no fallback: an
// unmatched date surfaces as the unknown-date sentinel at assembly time.
var DateField = Field{
	Name: "date",
	Rules: []Rule{
		{
			Pattern:   regexp.MustCompile(`(?:日付|日時|取引日|発行日|ご利用日)\s*[:：]\s*(\d{2,4}\s*[/\-年]\s*\d{1,2}\s*[/\-月]\s*\d{1,2}\s*日?)`),
			Transform: NormalizeDate,
		},
		{
			Pattern:   regexp.MustCompile(`(\d{4}\s*[/\-年]\s*\d{1,2}\s*[/\-月]\s*\d{1,2}\s*日?)`),
			Transform: NormalizeDate,
		},
		{
			Pattern:   regexp.MustCompile(`(\d{2}\s*[/\-年]\s*\d{1,2}\s*[/\-月]\s*\d{1,2}\s*日?)`),
			Transform: NormalizeDate,
		},
		{
			Pattern:   regexp.MustCompile(`(\d{1,2}\s*[/月]\s*\d{1,2}\s*日?)`),
			Transform: NormalizeDate,
		},
	},
}

// AmountField recovers the receipt total. Labeled totals are preferred in
// priority order; a currency-marked number at line end or before the
// currency unit word is the last pattern resort. The fallback scans the
// whole text and keeps the maximum currency-marked value.
var AmountField = Field{
	Name: "amount",
	Rules: []Rule{
		{
			Pattern:   regexp.MustCompile(`(?:合計金額|総合計|総計|合計)\s*[:：]?\s*[¥￥]?\s*(\d[\d,]*)`),
			Transform: ParseAmount,
		},
		{
			Pattern:   regexp.MustCompile(`(?:小計|お買上げ合計|お買い上げ合計|購入合計)\s*[:：]?\s*[¥￥]?\s*(\d[\d,]*)`),
			Transform: ParseAmount,
		},
		{
			Pattern:   regexp.MustCompile(`(?i)(?:total|amount|お会計|金額)\s*[:：]?\s*[¥￥$]?\s*(\d[\d,]*)`),
			Transform: ParseAmount,
		},
		{
			Pattern:   regexp.MustCompile(`(?:お支払い金額|お支払金額|ご請求金額|請求金額|請求額)\s*[:：]?\s*[¥￥]?\s*(\d[\d,]*)`),
			Transform: ParseAmount,
		},
		{
			Pattern:   regexp.MustCompile(`(?m)[¥￥]\s*(\d[\d,]*)\s*$`),
			Transform: ParseAmount,
		},
		{
			Pattern:   regexp.MustCompile(`(\d[\d,]*)\s*円`),
			Transform: ParseAmount,
		},
	},
	Fallback: MaxCurrencyToken,
}

// TaxAmountField recovers the consumption tax amount. No fallback: tax is
// absent, not zero, when unmatched.
var TaxAmountField = Field{
	Name: "tax_amount",
	Rules: []Rule{
		{
			Pattern:   regexp.MustCompile(`(?:消費税等|消費税額|消費税)\s*[(（]?(?:\d+%)?[)）]?\s*[:：]?\s*[¥￥]?\s*(\d[\d,]*)`),
			Transform: ParseAmount,
		},
		{
			Pattern:   regexp.MustCompile(`内税\s*[(（]?(?:\d+%)?[)）]?\s*[:：]?\s*[¥￥]?\s*(\d[\d,]*)`),
			Transform: ParseAmount,
		},
		{
			Pattern:   regexp.MustCompile(`外税\s*[(（]?(?:\d+%)?[)）]?\s*[:：]?\s*[¥￥]?\s*(\d[\d,]*)`),
			Transform: ParseAmount,
		},
		{
			Pattern:   regexp.MustCompile(`税額\s*[:：]?\s*[¥￥]?\s*(\d[\d,]*)`),
			Transform: ParseAmount,
		},
		{
			Pattern:   regexp.MustCompile(`(?m)税\s*[¥￥]?\s*(\d[\d,]*)\s*$`),
			Transform: ParseAmount,
		},
	},
}

// PaymentMethodField recovers the payment method from an explicit label
// (capturing the remainder of the line) or from a bare keyword out of the
// known payment method names. No fallback.
var PaymentMethodField = Field{
	Name: "payment_method",
	Rules: []Rule{
		{Pattern: regexp.MustCompile(`(?:支払方法|お支払い方法|お支払方法|支払い方法)\s*[:：]\s*([^\n]+)`)},
		{Pattern: regexp.MustCompile(`(クレジットカード|クレジット|デビットカード|デビット|電子マネー|QRコード決済|QRコード|コード決済|現金|PayPay|ペイペイ|LINE Pay|ラインペイ|楽天ペイ|d払い|au PAY|メルペイ|Suica|PASMO|iD|QUICPay|nanaco|WAON|Edy|カード)`)},
	},
}

// firstNonBlankLine returns the first non-blank line of the text, trimmed.
func firstNonBlankLine(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line, true
		}
	}
	return "", false
}
