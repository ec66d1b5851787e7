package alpaca

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetAssetsFiltersTradable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/assets" {
			t.Errorf("Expected path /v1/assets, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("status") != "active" {
			t.Errorf("Expected status=active, got %q", q.Get("status"))
		}
		if q.Get("asset_class") != "us_equity" {
			t.Errorf("Expected asset_class=us_equity, got %q", q.Get("asset_class"))
		}
		w.Write([]byte(`[
			{"symbol":"A","tradable":true},
			{"symbol":"B","tradable":false},
			{"symbol":"C","tradable":true}
		]`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)

	assets, err := c.GetAssets(context.Background(), AssetClassUSEquity)
	if err != nil {
		t.Fatalf("GetAssets failed: %v", err)
	}

	if len(assets) != 2 {
		t.Fatalf("Expected 2 tradable assets, got %d", len(assets))
	}
	if assets[0].Symbol != "A" || assets[1].Symbol != "C" {
		t.Errorf("Expected symbols [A C], got [%s %s]", assets[0].Symbol, assets[1].Symbol)
	}
	for _, a := range assets {
		if !a.Tradable {
			t.Errorf("Non-tradable asset %s leaked through filter", a.Symbol)
		}
	}
}

func TestGetAssetsDefaultsToUSEquity(t *testing.T) {
	var gotClass string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClass = r.URL.Query().Get("asset_class")
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)

	if _, err := c.GetAssets(context.Background(), ""); err != nil {
		t.Fatalf("GetAssets failed: %v", err)
	}
	if gotClass != "us_equity" {
		t.Errorf("Expected default asset_class=us_equity, got %q", gotClass)
	}
}

func TestParseAssetClass(t *testing.T) {
	tests := []struct {
		input   string
		want    AssetClass
		wantErr bool
	}{
		{"us_equity", AssetClassUSEquity, false},
		{"crypto", AssetClassCrypto, false},
		{"", AssetClassUSEquity, false},
		{"forex", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAssetClass(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAssetClass(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAssetClass(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
