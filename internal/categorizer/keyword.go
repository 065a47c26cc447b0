package categorizer

import (
	"strings"

	"fjacquet/receipt-csv/internal/models"
)

// categoryRule pairs a category label with the keywords that select it.
// Rules are evaluated in slice order: the first category with a matching
// keyword wins, so the table is ordered from most to least specific spend
// type. This ordering is fixed and never mutated at runtime.
type categoryRule struct {
	Category string
	Keywords []string
}

// defaultRules is the built-in keyword table. Latin-script keywords are
// matched case-insensitively; Japanese keywords are matched verbatim.
var defaultRules = []categoryRule{
	{
		Category: models.CategoryDining,
		Keywords: []string{
			"レストラン", "食堂", "居酒屋", "カフェ", "喫茶", "珈琲",
			"焼肉", "焼鳥", "寿司", "鮨", "ラーメン", "そば", "うどん",
			"ダイニング", "酒場", "バル", "ビストロ",
			"スターバックス", "starbucks", "ドトール", "タリーズ",
			"マクドナルド", "mcdonald", "ケンタッキー", "モスバーガー",
			"サイゼリヤ", "ガスト", "すき家", "吉野家", "松屋",
			"restaurant", "cafe", "diner", "grill",
		},
	},
	{
		Category: models.CategoryGroceries,
		Keywords: []string{
			"スーパー", "マーケット", "ストア", "商店", "食品館", "青果",
			"イオン", "西友", "ライフ", "マルエツ", "イトーヨーカドー",
			"成城石井", "業務スーパー", "オーケー",
			"セブンイレブン", "セブン-イレブン", "ファミリーマート", "ローソン",
			"ミニストップ", "コンビニ",
			"supermarket", "grocery", "mart",
		},
	},
	{
		Category: models.CategoryTransport,
		Keywords: []string{
			"タクシー", "鉄道", "電鉄", "バス", "メトロ", "交通",
			"ガソリン", "石油", "給油",
			"エネオス", "eneos", "出光", "シェル", "コスモ石油", "apollostation",
			"パーキング", "駐車場", "高速道路", "nexco", "etc",
			"taxi", "railway", "jr",
		},
	},
	{
		Category: models.CategoryLodging,
		Keywords: []string{
			"ホテル", "旅館", "宿", "イン", "リゾート",
			"hotel", "inn", "hostel", "resort",
		},
	},
	{
		Category: models.CategoryStationery,
		Keywords: []string{
			"文具", "文房具", "書店", "書房", "ブックス",
			"紀伊國屋", "ジュンク堂", "丸善", "有隣堂", "蔦屋", "tsutaya",
			"ハンズ", "ロフト", "loft", "ダイソー", "セリア", "キャンドゥ",
			"book", "stationery",
		},
	},
	{
		Category: models.CategoryHealthcare,
		Keywords: []string{
			"薬局", "ドラッグ", "調剤", "クリニック", "病院", "医院", "歯科",
			"マツモトキヨシ", "ウエルシア", "ツルハ", "サンドラッグ",
			"スギ薬局", "ココカラファイン",
			"pharmacy", "drug", "clinic",
		},
	},
}

// Categorize maps a store name to a spending category. It is total and
// deterministic: every input yields exactly one of the fixed category
// labels, with models.CategoryOther as the default.
func Categorize(storeName string) string {
	return categorizeWithRules(storeName, defaultRules)
}

func categorizeWithRules(storeName string, rules []categoryRule) string {
	name := strings.ToLower(storeName)

	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(name, strings.ToLower(keyword)) {
				return rule.Category
			}
		}
	}
	return models.CategoryOther
}

// KnownCategories returns the closed set of labels the classifier can emit.
func KnownCategories() []string {
	labels := make([]string, 0, len(defaultRules)+1)
	for _, rule := range defaultRules {
		labels = append(labels, rule.Category)
	}
	return append(labels, models.CategoryOther)
}
