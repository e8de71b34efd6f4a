package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRequiresSession(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := srv.do(t, httptest.NewRequest(http.MethodGet, "/cart", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartAddAndView(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "seller", "password123")
	sellerSession := srv.login(t, "seller", "password123")
	lampID := srv.addProduct(t, sellerSession, "Lamp", "12.50")
	chairID := srv.addProduct(t, sellerSession, "Chair", "30")

	srv.register(t, "buyer", "password123")
	buyerSession := srv.login(t, "buyer", "password123")

	for _, id := range []uint{lampID, chairID} {
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cart/add/%d", id), nil)
		req.AddCookie(buyerSession)
		rec, _ := srv.do(t, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(buyerSession)
	rec, body := srv.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]any)
	assert.Len(t, data["items"], 2)
	assert.InDelta(t, 42.50, data["total_price"].(float64), 0.001)
}

func TestCartAddReissuesSessionCookie(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "seller", "password123")
	sellerSession := srv.login(t, "seller", "password123")
	id := srv.addProduct(t, sellerSession, "Lamp", "5")

	srv.register(t, "buyer", "password123")
	buyerSession := srv.login(t, "buyer", "password123")

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cart/add/%d", id), nil)
	req.AddCookie(buyerSession)
	rec, body := srv.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["data"].(map[string]any)["cart_count"])

	reissued := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == srv.cfg.Session.CookieName && cookie.Value != "" && cookie.Value != buyerSession.Value {
			reissued = true
		}
	}
	assert.True(t, reissued)
}

func TestCartAddOwnProductIsNoOp(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "seller", "password123")
	session := srv.login(t, "seller", "password123")
	id := srv.addProduct(t, session, "Mine", "5")

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cart/add/%d", id), nil)
	req.AddCookie(session)
	rec, body := srv.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["data"].(map[string]any)["cart_count"])
}

func TestCartAddMissingProduct(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "buyer", "password123")
	session := srv.login(t, "buyer", "password123")

	req := httptest.NewRequest(http.MethodPost, "/cart/add/999", nil)
	req.AddCookie(session)
	rec, _ := srv.do(t, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartRemove(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "seller", "password123")
	sellerSession := srv.login(t, "seller", "password123")
	id := srv.addProduct(t, sellerSession, "Lamp", "5")

	srv.register(t, "buyer", "password123")
	buyerSession := srv.login(t, "buyer", "password123")

	add := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cart/add/%d", id), nil)
	add.AddCookie(buyerSession)
	rec, _ := srv.do(t, add)
	require.Equal(t, http.StatusOK, rec.Code)

	remove := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cart/remove/%d", id), nil)
	remove.AddCookie(buyerSession)
	rec, body := srv.do(t, remove)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["data"].(map[string]any)["cart_count"])

	// Removing again is a 404: the entry is gone.
	again := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cart/remove/%d", id), nil)
	again.AddCookie(buyerSession)
	rec, _ = srv.do(t, again)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
