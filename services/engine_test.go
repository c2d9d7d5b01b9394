package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"food-webhook/models"
)

func testCatalog() Catalog {
	return buildCatalog([]models.MenuItem{
		{ID: "1", Category: models.CategoryFood, Name: "Pizza", Price: 400},
		{ID: "2", Category: models.CategoryFood, Name: "Burger", Price: 250},
		{ID: "3", Category: models.CategoryFood, Name: "Samosa", Price: 80},
		{ID: "4", Category: models.CategoryDrink, Name: "Mango Lassi", Price: 180},
	})
}

func TestBuildOrderTotalsAndLineOrder(t *testing.T) {
	c := testCatalog()
	o, err := BuildOrder(c, []ItemRequest{
		{Name: "Burger", Qty: 1},
		{Name: "Pizza", Qty: 2},
		{Name: "Samosa", Qty: 3},
	}, time.Now())
	if err != nil {
		t.Fatalf("BuildOrder: %v", err)
	}
	if o.Status != models.OrderStatusPending {
		t.Errorf("status = %q, want pending", o.Status)
	}
	if o.ID == "" {
		t.Error("expected a generated order id")
	}
	want := int64(250 + 2*400 + 3*80)
	if o.ItemsTotal != want {
		t.Errorf("total = %d, want %d", o.ItemsTotal, want)
	}
	wantLines := []models.OrderLine{
		{Item: "Burger", Qty: 1},
		{Item: "Pizza", Qty: 2},
		{Item: "Samosa", Qty: 3},
	}
	if !reflect.DeepEqual(o.Lines, wantLines) {
		t.Errorf("lines = %+v, want %+v", o.Lines, wantLines)
	}
}

func TestBuildOrderUnknownItem(t *testing.T) {
	_, err := BuildOrder(testCatalog(), []ItemRequest{
		{Name: "Pizza", Qty: 1},
		{Name: "Sushi", Qty: 1},
	}, time.Now())
	var notAvailable *ItemNotAvailableError
	if !errors.As(err, &notAvailable) {
		t.Fatalf("err = %v, want ItemNotAvailableError", err)
	}
	if notAvailable.Name != "Sushi" {
		t.Errorf("name = %q, want Sushi", notAvailable.Name)
	}
}

func TestBuildOrderMergesDuplicates(t *testing.T) {
	o, err := BuildOrder(testCatalog(), []ItemRequest{
		{Name: "Pizza", Qty: 1},
		{Name: "pizza", Qty: 2},
	}, time.Now())
	if err != nil {
		t.Fatalf("BuildOrder: %v", err)
	}
	if len(o.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(o.Lines))
	}
	if o.Lines[0].Item != "Pizza" || o.Lines[0].Qty != 3 {
		t.Errorf("line = %+v, want Pizza x3", o.Lines[0])
	}
	if o.ItemsTotal != 1200 {
		t.Errorf("total = %d, want 1200", o.ItemsTotal)
	}
}

func TestAddToOrderSingleCallEqualsRepeatedCalls(t *testing.T) {
	c := testCatalog()

	one, err := BuildOrder(c, []ItemRequest{{Name: "Burger", Qty: 1}}, time.Now())
	if err != nil {
		t.Fatalf("BuildOrder: %v", err)
	}
	if err := AddToOrder(c, one, []ItemRequest{{Name: "Pizza", Qty: 1}, {Name: "Pizza", Qty: 1}}); err != nil {
		t.Fatalf("AddToOrder: %v", err)
	}

	two, err := BuildOrder(c, []ItemRequest{{Name: "Burger", Qty: 1}}, time.Now())
	if err != nil {
		t.Fatalf("BuildOrder: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := AddToOrder(c, two, []ItemRequest{{Name: "Pizza", Qty: 1}}); err != nil {
			t.Fatalf("AddToOrder call %d: %v", i, err)
		}
	}

	if !reflect.DeepEqual(one.Lines, two.Lines) {
		t.Errorf("lines differ: %+v vs %+v", one.Lines, two.Lines)
	}
	if one.ItemsTotal != two.ItemsTotal {
		t.Errorf("totals differ: %d vs %d", one.ItemsTotal, two.ItemsTotal)
	}
}

func TestAddToOrderUnknownItemLeavesOrderUnchanged(t *testing.T) {
	c := testCatalog()
	o, err := BuildOrder(c, []ItemRequest{{Name: "Pizza", Qty: 2}}, time.Now())
	if err != nil {
		t.Fatalf("BuildOrder: %v", err)
	}
	before := cloneOrder(o)

	err = AddToOrder(c, o, []ItemRequest{{Name: "Burger", Qty: 1}, {Name: "Ramen", Qty: 1}})
	var notAvailable *ItemNotAvailableError
	if !errors.As(err, &notAvailable) {
		t.Fatalf("err = %v, want ItemNotAvailableError", err)
	}
	if !reflect.DeepEqual(o.Lines, before.Lines) || o.ItemsTotal != before.ItemsTotal {
		t.Errorf("order changed after failed add: %+v", o)
	}
}

func TestRemoveInsufficientQuantityLeavesOrderUnchanged(t *testing.T) {
	c := testCatalog()
	o, err := BuildOrder(c, []ItemRequest{{Name: "Pizza", Qty: 2}, {Name: "Burger", Qty: 1}}, time.Now())
	if err != nil {
		t.Fatalf("BuildOrder: %v", err)
	}
	before := cloneOrder(o)

	err = RemoveFromOrder(c, o, []ItemRequest{{Name: "Burger", Qty: 1}, {Name: "Pizza", Qty: 5}})
	var insufficient *InsufficientQuantityError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want InsufficientQuantityError", err)
	}
	if insufficient.Have != 2 || insufficient.Want != 5 {
		t.Errorf("have/want = %d/%d, want 2/5", insufficient.Have, insufficient.Want)
	}
	if !reflect.DeepEqual(o.Lines, before.Lines) || o.ItemsTotal != before.ItemsTotal {
		t.Errorf("order changed after failed removal: %+v", o)
	}
}

func TestRemoveItemNotInOrder(t *testing.T) {
	c := testCatalog()
	o, err := BuildOrder(c, []ItemRequest{{Name: "Pizza", Qty: 1}}, time.Now())
	if err != nil {
		t.Fatalf("BuildOrder: %v", err)
	}
	err = RemoveFromOrder(c, o, []ItemRequest{{Name: "Burger", Qty: 1}})
	var notInOrder *ItemNotInOrderError
	if !errors.As(err, &notInOrder) {
		t.Fatalf("err = %v, want ItemNotInOrderError", err)
	}
}

func TestRemoveExactQuantityDeletesLine(t *testing.T) {
	c := testCatalog()
	o, err := BuildOrder(c, []ItemRequest{{Name: "Pizza", Qty: 2}, {Name: "Burger", Qty: 1}}, time.Now())
	if err != nil {
		t.Fatalf("BuildOrder: %v", err)
	}
	if err := RemoveFromOrder(c, o, []ItemRequest{{Name: "Pizza", Qty: 2}}); err != nil {
		t.Fatalf("RemoveFromOrder: %v", err)
	}
	wantLines := []models.OrderLine{{Item: "Burger", Qty: 1}}
	if !reflect.DeepEqual(o.Lines, wantLines) {
		t.Errorf("lines = %+v, want %+v", o.Lines, wantLines)
	}
	if o.ItemsTotal != 250 {
		t.Errorf("total = %d, want 250", o.ItemsTotal)
	}
}

func TestRemoveMatchesCaseInsensitively(t *testing.T) {
	c := testCatalog()
	o, err := BuildOrder(c, []ItemRequest{{Name: "Pizza", Qty: 2}}, time.Now())
	if err != nil {
		t.Fatalf("BuildOrder: %v", err)
	}
	if err := RemoveFromOrder(c, o, []ItemRequest{{Name: "pizza", Qty: 1}}); err != nil {
		t.Fatalf("RemoveFromOrder: %v", err)
	}
	if len(o.Lines) != 1 || o.Lines[0].Qty != 1 {
		t.Errorf("lines = %+v, want Pizza x1", o.Lines)
	}
	if o.ItemsTotal != 400 {
		t.Errorf("total = %d, want 400", o.ItemsTotal)
	}
}

func TestPlaceThenAddRoundTrip(t *testing.T) {
	c := testCatalog()
	o, err := BuildOrder(c, []ItemRequest{{Name: "Pizza", Qty: 2}}, time.Now())
	if err != nil {
		t.Fatalf("BuildOrder: %v", err)
	}
	if o.ItemsTotal != 800 {
		t.Fatalf("total after place = %d, want 800", o.ItemsTotal)
	}
	if err := AddToOrder(c, o, []ItemRequest{{Name: "Pizza", Qty: 1}}); err != nil {
		t.Fatalf("AddToOrder: %v", err)
	}
	if o.ItemsTotal != 1200 {
		t.Errorf("total after add = %d, want 1200", o.ItemsTotal)
	}
	if len(o.Lines) != 1 || o.Lines[0].Qty != 3 {
		t.Errorf("lines = %+v, want a single Pizza x3 line", o.Lines)
	}
}

func TestAddToOrderRejectsNonPositiveQuantity(t *testing.T) {
	c := testCatalog()
	o := &models.Order{Status: models.OrderStatusPending}
	err := AddToOrder(c, o, []ItemRequest{{Name: "Pizza", Qty: 0}})
	var invalid *InvalidQuantityError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidQuantityError", err)
	}
}
