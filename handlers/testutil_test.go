package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"apparel-backend/auth"
	"apparel-backend/models"
	"apparel-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

// ---------- in-memory fakes ----------

type fakeUserStore struct {
	users []models.User
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeUserStore) Insert(_ context.Context, user *models.User) error {
	s.users = append(s.users, *user)
	return nil
}

func (s *fakeUserStore) UpdateProfile(_ context.Context, id, name, phone, address string) error {
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Name = name
			s.users[i].Phone = phone
			s.users[i].Address = address
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeProductStore struct {
	products []models.Product
}

func (s *fakeProductStore) List(_ context.Context, filter store.ProductFilter) ([]models.Product, error) {
	matched := []models.Product{}
	for _, p := range s.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Size != "" && !contains(p.Sizes, filter.Size) {
			continue
		}
		if filter.Color != "" && !contains(p.Colors, filter.Color) {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
		}
		matched = append(matched, p)
	}
	return matched, nil
}

func (s *fakeProductStore) GetByID(_ context.Context, id string) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeProductStore) Insert(_ context.Context, product *models.Product) error {
	s.products = append(s.products, *product)
	return nil
}

func (s *fakeProductStore) Update(_ context.Context, id string, input models.ProductInput) error {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Name = input.Name
			s.products[i].Description = input.Description
			s.products[i].Category = input.Category
			s.products[i].Price = input.Price
			s.products[i].Sizes = input.Sizes
			s.products[i].Colors = input.Colors
			s.products[i].Stock = input.StockOrDefault()
			if input.Images != nil {
				s.products[i].Images = input.Images
			}
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *fakeProductStore) Delete(_ context.Context, id string) error {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *fakeProductStore) PushImage(_ context.Context, id string, image models.ImageMetadata) error {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Images = append(s.products[i].Images, image)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeCartStore struct {
	carts []models.Cart
}

func (s *fakeCartStore) FindByUser(_ context.Context, userID string) (*models.Cart, error) {
	for i := range s.carts {
		if s.carts[i].UserID == userID {
			c := s.carts[i]
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeCartStore) Insert(_ context.Context, cart *models.Cart) error {
	s.carts = append(s.carts, *cart)
	return nil
}

func (s *fakeCartStore) AddItem(_ context.Context, userID string, item models.CartItem) error {
	for i := range s.carts {
		if s.carts[i].UserID == userID {
			s.carts[i].Items = append(s.carts[i].Items, item)
			s.carts[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *fakeCartStore) ReplaceItems(_ context.Context, userID string, items []models.CartItem) error {
	for i := range s.carts {
		if s.carts[i].UserID == userID {
			s.carts[i].Items = items
			s.carts[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *fakeCartStore) RemoveItem(_ context.Context, userID, productID string) error {
	for i := range s.carts {
		if s.carts[i].UserID == userID {
			kept := s.carts[i].Items[:0]
			for _, item := range s.carts[i].Items {
				if item.ProductID != productID {
					kept = append(kept, item)
				}
			}
			s.carts[i].Items = kept
		}
	}
	return nil
}

func (s *fakeCartStore) Clear(_ context.Context, userID string) error {
	for i := range s.carts {
		if s.carts[i].UserID == userID {
			s.carts[i].Items = []models.CartItem{}
			s.carts[i].UpdatedAt = time.Now().UTC()
		}
	}
	return nil
}

type fakeOrderStore struct {
	orders []models.Order
}

func (s *fakeOrderStore) Insert(_ context.Context, order *models.Order) error {
	s.orders = append(s.orders, *order)
	return nil
}

func (s *fakeOrderStore) ListByUser(_ context.Context, userID string) ([]models.Order, error) {
	matched := []models.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (s *fakeOrderStore) ListAll(_ context.Context) ([]models.Order, error) {
	return append([]models.Order{}, s.orders...), nil
}

func (s *fakeOrderStore) UpdateStatus(_ context.Context, id, status, paymentStatus string) error {
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			if paymentStatus != "" {
				s.orders[i].PaymentStatus = paymentStatus
			}
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeCategoryStore struct {
	categories []models.Category
}

func (s *fakeCategoryStore) List(_ context.Context) ([]models.Category, error) {
	return append([]models.Category{}, s.categories...), nil
}

func (s *fakeCategoryStore) Insert(_ context.Context, category *models.Category) error {
	s.categories = append(s.categories, *category)
	return nil
}

type fakeWishlistStore struct {
	wishlists []models.Wishlist
}

func (s *fakeWishlistStore) FindByUser(_ context.Context, userID string) (*models.Wishlist, error) {
	for i := range s.wishlists {
		if s.wishlists[i].UserID == userID {
			w := s.wishlists[i]
			return &w, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeWishlistStore) AddProduct(_ context.Context, wishlistID, userID, productID string) error {
	for i := range s.wishlists {
		if s.wishlists[i].UserID == userID {
			if !contains(s.wishlists[i].ProductIDs, productID) {
				s.wishlists[i].ProductIDs = append(s.wishlists[i].ProductIDs, productID)
			}
			return nil
		}
	}
	s.wishlists = append(s.wishlists, models.Wishlist{
		ID:         wishlistID,
		UserID:     userID,
		ProductIDs: []string{productID},
	})
	return nil
}

func (s *fakeWishlistStore) RemoveProduct(_ context.Context, userID, productID string) error {
	for i := range s.wishlists {
		if s.wishlists[i].UserID == userID {
			kept := s.wishlists[i].ProductIDs[:0]
			for _, id := range s.wishlists[i].ProductIDs {
				if id != productID {
					kept = append(kept, id)
				}
			}
			s.wishlists[i].ProductIDs = kept
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// ---------- test harness ----------

type testEnv struct {
	router    *gin.Engine
	users     *fakeUserStore
	products  *fakeProductStore
	carts     *fakeCartStore
	orders    *fakeOrderStore
	wishlists *fakeWishlistStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:     &fakeUserStore{},
		products:  &fakeProductStore{},
		carts:     &fakeCartStore{},
		orders:    &fakeOrderStore{},
		wishlists: &fakeWishlistStore{},
	}
	categories := &fakeCategoryStore{}

	env.router = NewRouter(Deps{
		Users:      env.users,
		Secret:     testSecret,
		UploadDir:  t.TempDir(),
		Auth:       NewAuthHandler(env.users, testSecret),
		Products:   NewProductHandler(env.products, t.TempDir()),
		Cart:       NewCartHandler(env.carts),
		Orders:     NewOrderHandler(env.orders, env.carts),
		Categories: NewCategoryHandler(categories),
		Wishlist:   NewWishlistHandler(env.wishlists),
	})
	return env
}

// addUser inserts a user directly and returns a token for them.
func (e *testEnv) addUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()
	hashed, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  hashed,
		Name:      "Test User",
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, e.users.Insert(context.Background(), &user))

	token, err := auth.NewToken(testSecret, user.ID, user.Email, user.Role)
	require.NoError(t, err)
	return user, token
}

// do performs a JSON request. The token, when non-empty, rides the
// `token` query parameter the way the API expects it.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	if token != "" {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		path += sep + "token=" + token
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), "body: %s", w.Body.String())
}

func mustRequest(t *testing.T, w *httptest.ResponseRecorder, wantStatus int) {
	t.Helper()
	require.Equal(t, wantStatus, w.Code, "body: %s", w.Body.String())
}
