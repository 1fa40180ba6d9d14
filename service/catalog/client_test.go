package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, path string, payload string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, path, r.URL.Path)
		fmt.Fprint(w, payload)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestGetCategoriesExcludesAggregateCategory(t *testing.T) {
	client := newTestServer(t, "/api/v1/categories", `{"result":[
		{"categoryName":"TẤT CẢ","categoryId":0,"categorySeq":0},
		{"categoryName":"Thức ăn","categoryId":1,"categorySeq":1},
		{"categoryName":"Đồ uống","categoryId":2,"categorySeq":2}
	]}`)

	payload, err := client.GetCategories(context.Background())
	require.NoError(t, err)

	var decoded struct {
		Categories []Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	require.Len(t, decoded.Categories, 2)
	assert.Equal(t, "Thức ăn", decoded.Categories[0].Name)
	assert.Equal(t, int64(1), decoded.Categories[0].ID)
	assert.Equal(t, "Đồ uống", decoded.Categories[1].Name)
}

func TestGetCategoriesMissingResult(t *testing.T) {
	client := newTestServer(t, "/api/v1/categories", `{"status":"ok"}`)

	_, err := client.GetCategories(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResult)
}

func TestGetTopFoodReshaping(t *testing.T) {
	client := newTestServer(t, "/api/v1/main-advertisements/top-food", `{"result":[
		{"mainAdvertisementName":"Bún bò Huế","advertisementId":12,"priceRangeLow":35000,"priceRangeHigh":50000,"address":"Block A","phoneNumber":"0909000001"}
	]}`)

	payload, err := client.GetTopFood(context.Background())
	require.NoError(t, err)

	var decoded struct {
		Products []Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	require.Len(t, decoded.Products, 1)
	assert.Equal(t, "Bún bò Huế", decoded.Products[0].Name)
	assert.Equal(t, float64(35000), decoded.Products[0].Price)
	assert.Equal(t, float64(50000), decoded.Products[0].PriceRangeHigh)
}

func TestGetTopRestaurantsQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/main-advertisements/top-restaurants", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("serviceId"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		fmt.Fprint(w, `{"result":[]}`)
	}))
	t.Cleanup(srv.Close)

	payload, err := NewClient(srv.URL).GetTopRestaurants(context.Background(), 3, 5)
	require.NoError(t, err)
	assert.JSONEq(t, `{"restaurants":[]}`, payload)
}

func TestGetServiceAdvertisementsEmpty(t *testing.T) {
	for name, body := range map[string]string{
		"empty list":     `{"result":{"responseList":[]}}`,
		"missing result": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			client := newTestServer(t, "/api/v2/main-advertisements/service2", body)

			payload, err := client.GetServiceAdvertisements(context.Background(), "trasua")
			require.NoError(t, err)

			var decoded struct {
				Advertisements []ServiceAdvertisement `json:"advertisements"`
				Message        *string                `json:"message"`
			}
			require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
			assert.Empty(t, decoded.Advertisements)
			require.NotNil(t, decoded.Message, "empty advertisement list must carry a message")
			assert.NotEmpty(t, *decoded.Message)
		})
	}
}

func TestGetServiceAdvertisementsNonEmpty(t *testing.T) {
	client := newTestServer(t, "/api/v2/main-advertisements/service2", `{"result":{"responseList":[
		{"serviceName":"trasua","mainAdvertisementName":"Trà sữa Nhà Bên","likes":10,"description":"ngon","address":"Block B","phoneNumber":"0909000002","openingHourStart":"08:00","openingHourEnd":"22:00","averageRating":4.5}
	]}}`)

	payload, err := client.GetServiceAdvertisements(context.Background(), "trasua")
	require.NoError(t, err)

	var decoded struct {
		Advertisements []ServiceAdvertisement `json:"advertisements"`
		Message        *string                `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	require.Len(t, decoded.Advertisements, 1)
	assert.Equal(t, "Trà sữa Nhà Bên", decoded.Advertisements[0].Name)
	assert.Nil(t, decoded.Message)
	assert.Contains(t, payload, `"message":null`)
}

func TestGetPopularAdvertisements(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		client := newTestServer(t, "/api/v2/main-advertisements/top-populars", `{"result":[]}`)

		payload, err := client.GetPopularAdvertisements(context.Background(), "food")
		require.NoError(t, err)

		var decoded struct {
			Advertisements []PopularAdvertisement `json:"advertisements"`
			Message        *string                `json:"message"`
		}
		require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
		assert.Empty(t, decoded.Advertisements)
		require.NotNil(t, decoded.Message)
	})

	t.Run("non-empty", func(t *testing.T) {
		client := newTestServer(t, "/api/v2/main-advertisements/top-populars", `{"result":[
			{"mainAdvertisementName":"Cơm tấm Ba Ghiền","serviceName":"monchinh","likes":25,"views":120,"deliveryAvailable":true,"averageRating":4.8,"reviewCount":40}
		]}`)

		payload, err := client.GetPopularAdvertisements(context.Background(), "food")
		require.NoError(t, err)

		var decoded struct {
			Advertisements []PopularAdvertisement `json:"advertisements"`
			Message        *string                `json:"message"`
		}
		require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
		require.Len(t, decoded.Advertisements, 1)
		assert.Equal(t, "Cơm tấm Ba Ghiền", decoded.Advertisements[0].Name)
		assert.True(t, decoded.Advertisements[0].DeliveryAvailable)
		assert.Nil(t, decoded.Message)
	})
}

func TestGetUpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL).GetCategories(context.Background())
	assert.ErrorIs(t, err, ErrUpstream)
}
