package domain

// Tag category keys. The first four are backed by curated static tables;
// area and restaurant membership is resolved per item from its own
// restaurant list, because those names grow with the live data.
const (
	TagCategoryFoodType   = "food_type"
	TagCategoryDrinkType  = "drink_type"
	TagCategoryCharacter  = "character"
	TagCategoryFeatures   = "features"
	TagCategoryArea       = "area"
	TagCategoryRestaurant = "restaurant"
)

// TagCategoryOrder is the static-table lookup order. A tag present in two
// tables resolves to whichever table is checked first, so the order is a
// real tie-break policy and must not change.
var TagCategoryOrder = []string{
	TagCategoryFoodType,
	TagCategoryDrinkType,
	TagCategoryCharacter,
	TagCategoryFeatures,
}

// TagCategories holds the curated static membership tables.
var TagCategories = map[string][]string{
	TagCategoryFoodType: {
		"カレー",
		"ピザ",
		"ハンバーガー",
		"ホットドッグ",
		"サンドウィッチ・パン",
		"中華",
		"ワンハンドメニュー",
		"肉まん",
		"中華まん",
		"肉巻",
		"カルツォーネ",
		"ごはん",
	},
	TagCategoryDrinkType: {
		"ソフトドリンク",
		"アルコールドリンク",
		"ドリンク（アルコールドリンク）",
		"ペットボトル",
		"フリー・リフィル",
		"カクテル",
		"ビール",
		"ウィスキー",
		"ホット",
		"アイス",
	},
	TagCategoryCharacter: {
		"キャラクターモチーフのメニュー",
		"ミッキーマウス",
		"ドナルドダック",
		"プルート",
	},
	TagCategoryFeatures: {
		"ワンハンドメニュー",
		"ホット",
		"アイス",
		"スナック",
		"スウィーツ",
	},
}

// CategoryLabels maps tag category keys to display labels.
var CategoryLabels = map[string]string{
	TagCategoryFoodType:   "料理の種類",
	TagCategoryDrinkType:  "ドリンク種類",
	TagCategoryCharacter:  "キャラクター",
	TagCategoryArea:       "エリア",
	TagCategoryRestaurant: "レストラン",
	TagCategoryFeatures:   "特徴",
}

// CategoryDefinition describes one recognized value of the single-valued
// category key assigned by the offline classifier.
type CategoryDefinition struct {
	Key         string
	Label       string
	Description string
}

// DefaultCategory is counted for items whose category key is unset.
const DefaultCategory = "other"

// MenuCategories is the static category catalog, in display order.
var MenuCategories = []CategoryDefinition{
	{Key: "character_menu", Label: "キャラクターメニュー", Description: "キャラクターモチーフの特別メニュー"},
	{Key: "souvenir_menu", Label: "スーベニア付きメニュー", Description: "お土産容器付きのメニュー"},
	{Key: "sweets", Label: "スイーツ", Description: "デザート・お菓子類"},
	{Key: "food", Label: "料理", Description: "食事メニュー（カレー、ピザ、パスタ、ハンバーガーなど）"},
	{Key: "drink", Label: "ドリンク", Description: "飲み物全般（ソフトドリンク、アルコール含む）"},
	{Key: "snack", Label: "スナック", Description: "軽食・おつまみ"},
	{Key: "set_menu", Label: "セットメニュー", Description: "コース料理やセット商品"},
	{Key: DefaultCategory, Label: "その他", Description: "上記に該当しないメニュー"},
}
