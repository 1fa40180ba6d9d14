package catalog

// Các struct upstream* khớp tên trường của API danh mục dichvuhungngan,
// các struct còn lại là định dạng trường ổn định trả về cho model.

type upstreamCategory struct {
	CategoryName string `json:"categoryName"`
	CategoryID   int64  `json:"categoryId"`
	CategorySeq  int    `json:"categorySeq"`
}

type upstreamService struct {
	ServiceName       string `json:"serviceName"`
	ServiceID         int64  `json:"serviceId"`
	DeliveryAvailable bool   `json:"deliveryAvailable"`
}

type upstreamAdvertisement struct {
	MainAdvertisementName string  `json:"mainAdvertisementName"`
	AdvertisementID       int64   `json:"advertisementId"`
	ServiceID             int64   `json:"serviceId"`
	CategoryName          string  `json:"categoryName"`
	ServiceName           string  `json:"serviceName"`
	Address               string  `json:"address"`
	PhoneNumber           string  `json:"phoneNumber"`
	PriceRangeLow         float64 `json:"priceRangeLow"`
	PriceRangeHigh        float64 `json:"priceRangeHigh"`
	OpeningHourStart      string  `json:"openingHourStart"`
	OpeningHourEnd        string  `json:"openingHourEnd"`
	DeliveryAvailable     bool    `json:"deliveryAvailable"`
	AverageRating         float64 `json:"averageRating"`
	ReviewCount           int     `json:"reviewCount"`
	Likes                 int     `json:"likes"`
	Views                 int     `json:"views"`
	Description           string  `json:"description"`
}

type Category struct {
	Name     string `json:"name"`
	ID       int64  `json:"id"`
	Sequence int    `json:"sequence"`
}

type Product struct {
	Name           string  `json:"name"`
	ID             int64   `json:"id"`
	Price          float64 `json:"price"`
	Address        string  `json:"address"`
	PhoneNumber    string  `json:"phoneNumber"`
	PriceRangeLow  float64 `json:"priceRangeLow"`
	PriceRangeHigh float64 `json:"priceRangeHigh"`
}

type Service struct {
	Name              string `json:"name"`
	ID                int64  `json:"id"`
	DeliveryAvailable bool   `json:"deliveryAvailable"`
}

type Restaurant struct {
	Name              string  `json:"name"`
	ID                int64   `json:"id"`
	ServiceID         int64   `json:"serviceId"`
	CategoryName      string  `json:"categoryName"`
	ServiceName       string  `json:"serviceName"`
	Address           string  `json:"address"`
	PhoneNumber       string  `json:"phoneNumber"`
	PriceRangeLow     float64 `json:"priceRangeLow"`
	PriceRangeHigh    float64 `json:"priceRangeHigh"`
	OpeningHourStart  string  `json:"openingHourStart"`
	OpeningHourEnd    string  `json:"openingHourEnd"`
	DeliveryAvailable bool    `json:"deliveryAvailable"`
	AverageRating     float64 `json:"averageRating"`
	ReviewCount       int     `json:"reviewCount"`
}

type ServiceAdvertisement struct {
	ServiceName      string  `json:"serviceName"`
	Name             string  `json:"name"`
	Likes            int     `json:"likes"`
	Description      string  `json:"description"`
	Address          string  `json:"address"`
	PhoneNumber      string  `json:"phoneNumber"`
	OpeningHourStart string  `json:"openingHourStart"`
	OpeningHourEnd   string  `json:"openingHourEnd"`
	AverageRating    float64 `json:"averageRating"`
}

type PopularAdvertisement struct {
	Name              string  `json:"name"`
	ServiceName       string  `json:"serviceName"`
	Likes             int     `json:"likes"`
	Views             int     `json:"views"`
	Description       string  `json:"description"`
	Address           string  `json:"address"`
	PhoneNumber       string  `json:"phoneNumber"`
	PriceRangeLow     float64 `json:"priceRangeLow"`
	PriceRangeHigh    float64 `json:"priceRangeHigh"`
	OpeningHourStart  string  `json:"openingHourStart"`
	OpeningHourEnd    string  `json:"openingHourEnd"`
	DeliveryAvailable bool    `json:"deliveryAvailable"`
	AverageRating     float64 `json:"averageRating"`
	ReviewCount       int     `json:"reviewCount"`
}
