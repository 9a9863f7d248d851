package anylist_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"anylist"
)

func TestUpdateRecipe_KeepsNameAndMergesFields(t *testing.T) {
	existing := `{
		"id":"r1","name":"Lasagna",
		"ingredients":[{"name":"pasta"}],
		"preparation_steps":["boil"],
		"note":"family favourite",
		"servings":"4",
		"rating":3,
		"photo_id":"p1"
	}`

	var saved map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/recipes/r1":
			_, _ = w.Write([]byte(existing))
		case r.Method == http.MethodPost && r.URL.Path == "/v1/recipes/r1":
			body, _ := io.ReadAll(r.Body)
			if err := json.Unmarshal(body, &saved); err != nil {
				t.Fatalf("decode save body: %v", err)
			}
			_, _ = w.Write(body)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})

	got, err := c.UpdateRecipe(context.Background(), "r1", anylist.RecipeDraft{
		Name:             "Renamed",
		Ingredients:      []anylist.Ingredient{{Name: "lasagne sheets"}, {Name: "ragu"}},
		PreparationSteps: []string{"layer", "bake"},
		Rating:           5,
	})
	if err != nil {
		t.Fatalf("UpdateRecipe: %v", err)
	}

	// Identity and stored name are kept, draft name is ignored.
	if saved["id"] != "r1" || saved["name"] != "Lasagna" {
		t.Fatalf("saved identity = %v / %v", saved["id"], saved["name"])
	}
	// Ingredients and steps replaced wholesale.
	if got := len(saved["ingredients"].([]any)); got != 2 {
		t.Fatalf("saved %d ingredients", got)
	}
	// Fields the draft set win, unset fields keep stored values.
	if saved["rating"] != float64(5) {
		t.Fatalf("rating = %v", saved["rating"])
	}
	if saved["note"] != "family favourite" || saved["servings"] != "4" || saved["photo_id"] != "p1" {
		t.Fatalf("merged fields = %+v", saved)
	}

	if got.Name != "Lasagna" || got.Rating != 5 || len(got.Ingredients) != 2 {
		t.Fatalf("returned recipe = %+v", got)
	}
}

func TestCreateRecipe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/recipes" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var in map[string]any
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if _, hasID := in["id"]; hasID && in["id"] != "" {
			t.Errorf("new recipe should not carry an id, got %v", in["id"])
		}
		in["id"] = "r2"
		if err := json.NewEncoder(w).Encode(in); err != nil {
			t.Fatalf("encode: %v", err)
		}
	})

	got, err := c.CreateRecipe(context.Background(), anylist.RecipeDraft{
		Name:        "Toast",
		Ingredients: []anylist.Ingredient{{Name: "bread", Quantity: "2 slices"}},
	})
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}
	if got.ID != "r2" || got.Name != "Toast" {
		t.Fatalf("recipe = %+v", got)
	}
}

func TestAddRecipeToList_SendsScale(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/recipes/r1/add-to-list" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var in map[string]any
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if in["list_id"] != "l1" || in["scale_factor"] != 2.5 {
			t.Errorf("body = %v", in)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.AddRecipeToList(context.Background(), "r1", "l1", 2.5); err != nil {
		t.Fatalf("AddRecipeToList: %v", err)
	}
}
