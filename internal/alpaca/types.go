package alpaca

import "fmt"

// AssetClass is the closed set of asset classes accepted by GetAssets.
type AssetClass string

const (
	AssetClassUSEquity AssetClass = "us_equity"
	AssetClassCrypto   AssetClass = "crypto"
)

// ParseAssetClass validates a raw asset class string. Empty input defaults
// to us_equity.
func ParseAssetClass(s string) (AssetClass, error) {
	switch AssetClass(s) {
	case "":
		return AssetClassUSEquity, nil
	case AssetClassUSEquity, AssetClassCrypto:
		return AssetClass(s), nil
	default:
		return "", fmt.Errorf("invalid asset class %q", s)
	}
}

// Asset is one entry from the broker assets endpoint. Extra upstream fields
// are tolerated and dropped on decode.
type Asset struct {
	ID           string `json:"id"`
	Class        string `json:"class"`
	Exchange     string `json:"exchange"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Tradable     bool   `json:"tradable"`
	Marginable   bool   `json:"marginable"`
	Shortable    bool   `json:"shortable"`
	EasyToBorrow bool   `json:"easy_to_borrow"`
	Fractionable bool   `json:"fractionable"`
}

// Bar is a single OHLCV bar in Alpaca's compact wire format.
type Bar struct {
	Timestamp  string  `json:"t"`
	Open       float64 `json:"o"`
	High       float64 `json:"h"`
	Low        float64 `json:"l"`
	Close      float64 `json:"c"`
	Volume     float64 `json:"v"`
	TradeCount int64   `json:"n"`
	VWAP       float64 `json:"vw"`
}

// barsResponse is one page of the stock bars endpoint.
type barsResponse struct {
	Bars          map[string][]Bar `json:"bars"`
	NextPageToken *string          `json:"next_page_token"`
}

// CalendarDay is one trading day from the market calendar endpoint.
type CalendarDay struct {
	Date         string `json:"date"`
	Open         string `json:"open"`
	Close        string `json:"close"`
	SessionOpen  string `json:"session_open,omitempty"`
	SessionClose string `json:"session_close,omitempty"`
}

// NewsImage is an image attachment on a news article.
type NewsImage struct {
	Size string `json:"size"`
	URL  string `json:"url"`
}

// NewsArticle is one article from the news endpoint.
type NewsArticle struct {
	ID        int64       `json:"id"`
	Headline  string      `json:"headline"`
	Author    string      `json:"author"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
	Summary   string      `json:"summary"`
	Content   string      `json:"content"`
	URL       string      `json:"url"`
	Symbols   []string    `json:"symbols"`
	Source    string      `json:"source"`
	Images    []NewsImage `json:"images,omitempty"`
}

// newsResponse is one page of the news endpoint.
type newsResponse struct {
	News          []NewsArticle `json:"news"`
	NextPageToken *string       `json:"next_page_token"`
}
