package conditional

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	forecast "github.com/eugener/forecast/internal"
)

func newRequest(method, inm string) *http.Request {
	req := httptest.NewRequest(method, "/WeatherForecast/0", nil)
	if inm != "" {
		req.Header.Set(IfNoneMatch, inm)
	}
	return req
}

func TestToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"whole seconds", time.Date(2022, 1, 2, 8, 0, 0, 0, time.UTC), "2022-01-02T08:00:00.000000000Z"},
		{"nanos kept", time.Date(2022, 1, 2, 8, 0, 0, 1500, time.UTC), "2022-01-02T08:00:00.000001500Z"},
		{"converted to utc", time.Date(2022, 1, 2, 10, 0, 0, 0, time.FixedZone("EET", 2*3600)), "2022-01-02T08:00:00.000000000Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Token(tt.in); got != tt.want {
				t.Errorf("Token() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenDistinctInstants(t *testing.T) {
	t.Parallel()

	base := time.Date(2022, 1, 1, 7, 0, 0, 0, time.UTC)
	if Token(base) == Token(base.Add(time.Nanosecond)) {
		t.Error("tokens of distinct instants must differ")
	}
	if len(Token(base)) != len(Token(base.Add(123*time.Millisecond))) {
		t.Error("token rendering must be fixed width")
	}
}

func TestCollectionToken(t *testing.T) {
	t.Parallel()

	fs := []forecast.Forecast{
		{LastModified: time.Date(2022, 1, 1, 7, 0, 0, 0, time.UTC)},
		{LastModified: time.Date(2022, 1, 2, 8, 0, 0, 0, time.UTC)},
	}
	want := Token(time.Date(2022, 1, 2, 8, 0, 0, 0, time.UTC))
	if got := CollectionToken(fs); got != want {
		t.Errorf("CollectionToken() = %q, want %q", got, want)
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	const token = "2022-01-02T08:00:00.000000000Z"

	tests := []struct {
		name     string
		method   string
		inm      string
		want     Decision
		wantETag bool
	}{
		{"get matching", http.MethodGet, token, NotModified, false},
		{"get no header", http.MethodGet, "", Proceed, true},
		{"get stale token", http.MethodGet, "2022-01-01T07:00:00.000000000Z", Proceed, true},
		{"get case differs", http.MethodGet, "2022-01-02t08:00:00.000000000z", Proceed, true},
		{"get list not parsed", http.MethodGet, token + ", other", Proceed, true},
		{"put matching", http.MethodPut, token, Proceed, true},
		{"head matching", http.MethodHead, token, Proceed, true},
		{"post matching", http.MethodPost, token, Proceed, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			got := Evaluate(token, rec, newRequest(tt.method, tt.inm))
			if got != tt.want {
				t.Errorf("decision = %v, want %v", got, tt.want)
			}
			etag, ok := rec.Header()[ETag]
			if ok != tt.wantETag {
				t.Fatalf("etag set = %v, want %v", ok, tt.wantETag)
			}
			if tt.wantETag && (len(etag) != 1 || etag[0] != token) {
				t.Errorf("etag = %v, want [%s]", etag, token)
			}
		})
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	t.Parallel()

	token := Token(time.Date(2022, 1, 1, 7, 0, 0, 0, time.UTC))
	for i := range 50 {
		rec := httptest.NewRecorder()
		if got := Evaluate(token, rec, newRequest(http.MethodGet, token)); got != NotModified {
			t.Fatalf("call %d: decision = %v, want %v", i, got, NotModified)
		}
	}
}

func TestEvaluateReplacesETag(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rec.Header()[ETag] = []string{"old-a", "old-b"}

	if got := Evaluate("fresh", rec, newRequest(http.MethodGet, "")); got != Proceed {
		t.Fatalf("decision = %v, want %v", got, Proceed)
	}
	if etag := rec.Header().Values("ETag"); len(etag) != 1 || etag[0] != "fresh" {
		t.Errorf("etag = %v, want [fresh]", etag)
	}
}

func TestEvaluateEmptyHeaderValue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header[IfNoneMatch] = []string{""}
	rec := httptest.NewRecorder()

	if got := Evaluate("tok", rec, req); got != Proceed {
		t.Errorf("decision = %v, want %v", got, Proceed)
	}
}

func TestWriteNotModified(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteNotModified(rec)
	if rec.Code != http.StatusNotModified {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotModified)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestDecisionString(t *testing.T) {
	t.Parallel()

	if Proceed.String() != "proceed" || NotModified.String() != "not_modified" {
		t.Errorf("labels = %q/%q", Proceed, NotModified)
	}
}
