package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hungngan-chat-backend/utils"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/avast/retry-go/v4"
)

const (
	requestAttempts = 3

	// Danh mục tổng hợp do API trả về, không đưa vào kết quả tra cứu
	allCategoriesName = "Tất cả"

	noServiceAdsMessage = "Dạ hiện tại bên em chưa có dịch vụ này trong khu vực của anh/chị. Em sẽ cập nhật và thông báo ngay khi có dịch vụ mới ạ."
	noPopularAdsMessage = "Dạ hiện tại bên em chưa có quảng cáo nổi bật nào trong danh mục này ạ. Em sẽ cập nhật và thông báo ngay khi có ạ."
)

var (
	ErrUpstream        = errors.New("catalog request failed")
	ErrMalformedResult = errors.New("malformed catalog response")
)

// Client gọi API danh mục của dichvuhungngan và định dạng lại kết quả
// thành payload JSON gọn cho tool message.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: utils.DefaultHTTPClient(),
	}
}

// GetCategories trả về danh sách danh mục, bỏ qua danh mục tổng hợp "Tất cả"
func (c *Client) GetCategories(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "/api/v1/categories", nil)
	if err != nil {
		return "", err
	}

	var upstream []upstreamCategory
	if err := unmarshalResult(body, &upstream); err != nil {
		return "", err
	}

	categories := make([]Category, 0, len(upstream))
	for _, category := range upstream {
		if strings.EqualFold(category.CategoryName, allCategoriesName) {
			continue
		}
		categories = append(categories, Category{
			Name:     category.CategoryName,
			ID:       category.CategoryID,
			Sequence: category.CategorySeq,
		})
	}

	return encodePayload(struct {
		Categories []Category `json:"categories"`
	}{categories})
}

func (c *Client) GetTopFood(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "/api/v1/main-advertisements/top-food", nil)
	if err != nil {
		return "", err
	}

	var upstream []upstreamAdvertisement
	if err := unmarshalResult(body, &upstream); err != nil {
		return "", err
	}

	products := make([]Product, 0, len(upstream))
	for _, product := range upstream {
		products = append(products, Product{
			Name:           product.MainAdvertisementName,
			ID:             product.AdvertisementID,
			Price:          product.PriceRangeLow,
			Address:        product.Address,
			PhoneNumber:    product.PhoneNumber,
			PriceRangeLow:  product.PriceRangeLow,
			PriceRangeHigh: product.PriceRangeHigh,
		})
	}

	return encodePayload(struct {
		Products []Product `json:"products"`
	}{products})
}

func (c *Client) GetServices(ctx context.Context, categoryName string) (string, error) {
	query := url.Values{"categoryName": {categoryName}}
	body, err := c.get(ctx, "/api/v1/advertisement-services/category", query)
	if err != nil {
		return "", err
	}

	var upstream []upstreamService
	if err := unmarshalResult(body, &upstream); err != nil {
		return "", err
	}

	services := make([]Service, 0, len(upstream))
	for _, service := range upstream {
		services = append(services, Service{
			Name:              service.ServiceName,
			ID:                service.ServiceID,
			DeliveryAvailable: service.DeliveryAvailable,
		})
	}

	return encodePayload(struct {
		Services []Service `json:"services"`
	}{services})
}

func (c *Client) GetTopRestaurants(ctx context.Context, serviceID, limit int) (string, error) {
	query := url.Values{
		"serviceId": {strconv.Itoa(serviceID)},
		"limit":     {strconv.Itoa(limit)},
	}
	body, err := c.get(ctx, "/api/v1/main-advertisements/top-restaurants", query)
	if err != nil {
		return "", err
	}

	var upstream []upstreamAdvertisement
	if err := unmarshalResult(body, &upstream); err != nil {
		return "", err
	}

	restaurants := make([]Restaurant, 0, len(upstream))
	for _, restaurant := range upstream {
		restaurants = append(restaurants, Restaurant{
			Name:              restaurant.MainAdvertisementName,
			ID:                restaurant.AdvertisementID,
			ServiceID:         restaurant.ServiceID,
			CategoryName:      restaurant.CategoryName,
			ServiceName:       restaurant.ServiceName,
			Address:           restaurant.Address,
			PhoneNumber:       restaurant.PhoneNumber,
			PriceRangeLow:     restaurant.PriceRangeLow,
			PriceRangeHigh:    restaurant.PriceRangeHigh,
			OpeningHourStart:  restaurant.OpeningHourStart,
			OpeningHourEnd:    restaurant.OpeningHourEnd,
			DeliveryAvailable: restaurant.DeliveryAvailable,
			AverageRating:     restaurant.AverageRating,
			ReviewCount:       restaurant.ReviewCount,
		})
	}

	return encodePayload(struct {
		Restaurants []Restaurant `json:"restaurants"`
	}{restaurants})
}

// GetServiceAdvertisements tra cứu quảng cáo theo mã dịch vụ. Khác với các
// tra cứu khác, danh sách rỗng hoặc thiếu không phải là lỗi: trả về message
// xin lỗi kèm danh sách rỗng để model phản hồi cho khách.
func (c *Client) GetServiceAdvertisements(ctx context.Context, serviceName string) (string, error) {
	query := url.Values{"serviceName": {serviceName}}
	body, err := c.get(ctx, "/api/v2/main-advertisements/service2", query)
	if err != nil {
		return "", err
	}

	var envelope struct {
		Result *struct {
			ResponseList []upstreamAdvertisement `json:"responseList"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}

	ads := make([]ServiceAdvertisement, 0)
	if envelope.Result != nil {
		for _, ad := range envelope.Result.ResponseList {
			ads = append(ads, ServiceAdvertisement{
				ServiceName:      ad.ServiceName,
				Name:             ad.MainAdvertisementName,
				Likes:            ad.Likes,
				Description:      ad.Description,
				Address:          ad.Address,
				PhoneNumber:      ad.PhoneNumber,
				OpeningHourStart: ad.OpeningHourStart,
				OpeningHourEnd:   ad.OpeningHourEnd,
				AverageRating:    ad.AverageRating,
			})
		}
	}

	var message *string
	if len(ads) == 0 {
		message = ptr(noServiceAdsMessage)
	}

	return encodePayload(struct {
		Advertisements []ServiceAdvertisement `json:"advertisements"`
		Message        *string                `json:"message"`
	}{ads, message})
}

func (c *Client) GetPopularAdvertisements(ctx context.Context, categoryName string) (string, error) {
	query := url.Values{"categoryName": {categoryName}}
	body, err := c.get(ctx, "/api/v2/main-advertisements/top-populars", query)
	if err != nil {
		return "", err
	}

	var envelope struct {
		Result []upstreamAdvertisement `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}

	ads := make([]PopularAdvertisement, 0, len(envelope.Result))
	for _, ad := range envelope.Result {
		ads = append(ads, PopularAdvertisement{
			Name:              ad.MainAdvertisementName,
			ServiceName:       ad.ServiceName,
			Likes:             ad.Likes,
			Views:             ad.Views,
			Description:       ad.Description,
			Address:           ad.Address,
			PhoneNumber:       ad.PhoneNumber,
			PriceRangeLow:     ad.PriceRangeLow,
			PriceRangeHigh:    ad.PriceRangeHigh,
			OpeningHourStart:  ad.OpeningHourStart,
			OpeningHourEnd:    ad.OpeningHourEnd,
			DeliveryAvailable: ad.DeliveryAvailable,
			AverageRating:     ad.AverageRating,
			ReviewCount:       ad.ReviewCount,
		})
	}

	var message *string
	if len(ads) == 0 {
		message = ptr(noPopularAdsMessage)
	}

	return encodePayload(struct {
		Advertisements []PopularAdvertisement `json:"advertisements"`
		Message        *string                `json:"message"`
	}{ads, message})
}

// get thực hiện GET với retry cho lỗi truyền tải, lỗi HTTP không retry
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("unexpected status %d", resp.StatusCode))
			}

			body, err = io.ReadAll(resp.Body)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(requestAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("Retrying catalog request",
				"attempt", n+1,
				"endpoint", endpoint,
				"err", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrUpstream, endpoint, err)
	}

	return body, nil
}

// unmarshalResult đọc trường result, thiếu hoặc null là lỗi upstream
func unmarshalResult(body []byte, target any) error {
	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return fmt.Errorf("%w: missing result field", ErrMalformedResult)
	}
	if err := json.Unmarshal(envelope.Result, target); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}
	return nil
}

// encodePayload sinh chuỗi JSON gửi lại cho model qua tool message
func encodePayload(payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode tool payload: %v", err)
	}
	return string(data), nil
}

func ptr(s string) *string {
	return &s
}
