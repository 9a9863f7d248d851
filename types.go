package anylist

// SavedTokens is the session material returned after login. Persist it to
// resume a session later without re-sending credentials.
type SavedTokens struct {
	UserID        string `json:"user_id"`
	AccessToken   string `json:"access_token"`
	RefreshToken  string `json:"refresh_token"`
	IsPremiumUser bool   `json:"is_premium_user"`
}

// ListItem is a single entry on a shopping list.
//
// Quantity and Category are optional; an empty string means unset.
type ListItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Checked  bool   `json:"checked"`
	Note     string `json:"note,omitempty"`
	Quantity string `json:"quantity,omitempty"`
	Category string `json:"category,omitempty"`
}

// List is a shopping list with its items.
type List struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []ListItem `json:"items"`
}

// Ingredient is one line of a recipe. It doubles as the input shape when
// creating or updating recipes.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Note     string `json:"note,omitempty"`
}

// Recipe is a stored recipe with its ingredients and metadata.
//
// PrepTime and CookTime are minutes; Rating runs 1 to 5. Zero means
// unset for all optional fields.
type Recipe struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Ingredients      []Ingredient `json:"ingredients"`
	PreparationSteps []string     `json:"preparation_steps"`
	Note             string       `json:"note,omitempty"`
	SourceName       string       `json:"source_name,omitempty"`
	SourceURL        string       `json:"source_url,omitempty"`
	Servings         string       `json:"servings,omitempty"`
	PrepTime         int          `json:"prep_time,omitempty"`
	CookTime         int          `json:"cook_time,omitempty"`
	Rating           int          `json:"rating,omitempty"`
	NutritionalInfo  string       `json:"nutritional_info,omitempty"`
	PhotoID          string       `json:"photo_id,omitempty"`
}

// RecipeDraft carries the fields for creating or updating a recipe.
// PhotoID comes from UploadPhoto.
type RecipeDraft struct {
	Name             string
	Ingredients      []Ingredient
	PreparationSteps []string
	Note             string
	SourceName       string
	SourceURL        string
	Servings         string
	PrepTime         int
	CookTime         int
	Rating           int
	NutritionalInfo  string
	PhotoID          string
}

// Category groups items within a list.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	SortIndex int    `json:"sort_index"`
}

// CategoryGroup is a named set of categories.
type CategoryGroup struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

// Store is a shop associated with a list, used to organise where items
// are bought.
type Store struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortIndex int    `json:"sort_index"`
}

// StoreFilter narrows a list view to a subset of stores.
type StoreFilter struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	StoreIDs []string `json:"store_ids"`
}

// FavouriteItem is a starter-list entry that can be copied onto a
// shopping list.
type FavouriteItem struct {
	ID       string `json:"id"`
	ListID   string `json:"list_id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Details  string `json:"details,omitempty"`
	Category string `json:"category,omitempty"`
}

// FavouritesList is a starter list holding favourite items, optionally
// tied to a shopping list.
type FavouritesList struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Items          []FavouriteItem `json:"items"`
	ShoppingListID string          `json:"shopping_list_id,omitempty"`
}

// MealPlanEvent is a calendar entry, either a recipe or a free-form note.
// Date is in YYYY-MM-DD form.
type MealPlanEvent struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Title    string `json:"title,omitempty"`
	RecipeID string `json:"recipe_id,omitempty"`
	LabelID  string `json:"label_id,omitempty"`
	Details  string `json:"details,omitempty"`
}

// ICalendarInfo describes the state of meal-plan calendar sync.
type ICalendarInfo struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url,omitempty"`
	Token   string `json:"token,omitempty"`
}

// RecipeCollection is a named grouping of recipe IDs.
type RecipeCollection struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	RecipeIDs []string `json:"recipe_ids"`
}
