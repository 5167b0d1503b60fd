package domain

import "time"

// ItemType тип позиции в корзине
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeMeal    ItemType = "meal"
)

func (t ItemType) Valid() bool {
	return t == ItemTypeProduct || t == ItemTypeMeal
}

// ProductCategory категория товара на рынке
type ProductCategory string

const (
	CategoryPantry ProductCategory = "pantry"
	CategorySnack  ProductCategory = "snack"
	CategoryBakery ProductCategory = "bakery"
)

// Product представляет безглютеновый товар магазина
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	Price       float64         `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Weight      string          `json:"weight,omitempty"`
	Badge       string          `json:"badge,omitempty"`
}

// Macros пищевая ценность блюда в граммах
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// Meal готовое блюдо из каталога
type Meal struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Ingredients []string `json:"ingredients"`
	Tags        []string `json:"tags"`
	Macros      Macros   `json:"macros"`
}

// CartItem позиция в корзине; ключ уникальности — пара (ID, Type)
type CartItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity int64    `json:"quantity"`
	Type     ItemType `json:"type"`
	Image    string   `json:"image"`
	Weight   string   `json:"weight,omitempty"`
}

// PaymentMethod способ оплаты заказа
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCOD  PaymentMethod = "cod"
)

// Order неизменяемый снимок оформленной корзины
type Order struct {
	ID        string        `json:"id"`
	Items     []CartItem    `json:"items"`
	Total     float64       `json:"total"`
	Method    PaymentMethod `json:"method"`
	Timestamp time.Time     `json:"timestamp"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Phone     string        `json:"phone"`
	Location  string        `json:"location"`
}

// CommunityMessage сообщение общей доски сообщества.
// Owner — email автора; по нему проверяется право удаления, наружу не отдаётся.
type CommunityMessage struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Initials  string    `json:"initials"`
	Owner     string    `json:"owner,omitempty" swaggerignore:"true"`
}

// Plan тариф подписки
type Plan string

const (
	PlanExplorer Plan = "Explorer"
	PlanPro      Plan = "Pro"
	PlanFamily   Plan = "Family"
)

// PlanPrice возвращает месячную стоимость тарифа в дирхамах
func PlanPrice(p Plan) (float64, bool) {
	switch p {
	case PlanExplorer:
		return 0, true
	case PlanPro:
		return 99, true
	case PlanFamily:
		return 199, true
	default:
		return 0, false
	}
}

// User активная сессия покупателя. Пароль хранится только в виде хеша.
type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash []byte    `json:"passwordHash"`
	Plan         Plan      `json:"plan"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Recipe структурированный рецепт, полученный от генеративной модели
type Recipe struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     string   `json:"prepTime"`
	Difficulty   string   `json:"difficulty"`
}

// FeaturedRecipe рецепт из подборки AI-кухни
type FeaturedRecipe struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Image       string   `json:"image"`
	Minutes     int      `json:"minutes"`
	Difficulty  string   `json:"difficulty"`
	Price       float64  `json:"price"`
	Badge       string   `json:"badge,omitempty"`
	Ingredients []string `json:"ingredients"`
}

// MealType категория рецепта для генерации
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
	MealDessert   MealType = "dessert"
)

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack, MealDessert:
		return true
	}
	return false
}

// Language язык ответа генеративной модели
type Language string

const (
	LangEnglish Language = "en"
	LangFrench  Language = "fr"
	LangArabic  Language = "ar"
)

func (l Language) Valid() bool {
	return l == LangEnglish || l == LangFrench || l == LangArabic
}

// Name человекочитаемое имя языка для промпта
func (l Language) Name() string {
	switch l {
	case LangArabic:
		return "Arabic"
	case LangFrench:
		return "French"
	default:
		return "English"
	}
}
