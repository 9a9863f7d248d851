package anylist

import "anylist/internal/protocol"

// Flat wire records convert directly; the helpers below handle the
// shapes that nest them.

func toList(w protocol.List) List {
	return List{ID: w.ID, Name: w.Name, Items: toListItems(w.Items)}
}

func toListItems(ws []protocol.ListItem) []ListItem {
	items := make([]ListItem, len(ws))
	for i, w := range ws {
		items[i] = ListItem(w)
	}
	return items
}

func toRecipe(w protocol.Recipe) Recipe {
	ingredients := make([]Ingredient, len(w.Ingredients))
	for i, ing := range w.Ingredients {
		ingredients[i] = Ingredient(ing)
	}
	return Recipe{
		ID:               w.ID,
		Name:             w.Name,
		Ingredients:      ingredients,
		PreparationSteps: w.PreparationSteps,
		Note:             w.Note,
		SourceName:       w.SourceName,
		SourceURL:        w.SourceURL,
		Servings:         w.Servings,
		PrepTime:         w.PrepTime,
		CookTime:         w.CookTime,
		Rating:           w.Rating,
		NutritionalInfo:  w.NutritionalInfo,
		PhotoID:          w.PhotoID,
	}
}

func toFavouritesList(w protocol.FavouritesList) FavouritesList {
	items := make([]FavouriteItem, len(w.Items))
	for i, it := range w.Items {
		items[i] = FavouriteItem(it)
	}
	return FavouritesList{
		ID:             w.ID,
		Name:           w.Name,
		Items:          items,
		ShoppingListID: w.ShoppingListID,
	}
}
