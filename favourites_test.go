package anylist_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"anylist"
)

func TestAddFavouriteToShoppingList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/lists/fl1/favourites":
			_, _ = w.Write([]byte(`{
				"id":"fl1","name":"Favourites","items":[
					{"id":"f1","list_id":"fl1","name":"Olive Oil","category":"Pantry"},
					{"id":"f2","list_id":"fl1","name":"Butter"}
				]
			}`))
		case r.Method == http.MethodPost && r.URL.Path == "/v1/lists/sl1/items/from-favourite":
			var fav map[string]string
			if err := json.NewDecoder(r.Body).Decode(&fav); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if fav["id"] != "f2" || fav["name"] != "Butter" {
				t.Errorf("posted favourite = %v", fav)
			}
			_, _ = w.Write([]byte(`{"id":"i5","name":"Butter","checked":false}`))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})

	item, err := c.AddFavouriteToShoppingList(context.Background(), "fl1", "f2", "sl1")
	if err != nil {
		t.Fatalf("AddFavouriteToShoppingList: %v", err)
	}
	if item.ID != "i5" || item.Name != "Butter" {
		t.Fatalf("item = %+v", item)
	}
}

func TestAddFavouriteToShoppingList_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			t.Errorf("no item should be posted: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"fl1","name":"Favourites","items":[]}`))
	})

	_, err := c.AddFavouriteToShoppingList(context.Background(), "fl1", "nope", "sl1")
	if !errors.Is(err, anylist.ErrFavouriteNotFound) {
		t.Fatalf("err = %v, want ErrFavouriteNotFound", err)
	}
}
