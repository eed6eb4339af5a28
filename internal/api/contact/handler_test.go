package contact_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	contactapi "portfolio-cms/internal/api/contact"
	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/app/http/middleware"
	"portfolio-cms/internal/dbtest"
	"portfolio-cms/internal/domain/contact"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() { gin.SetMode(gin.TestMode) }

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	r := gin.New()
	r.Use(middleware.Language())
	contactapi.NewHandler(db, rest.Options{}).Register(r.Group("/api/contact"), middleware.SanitizeInput())
	return r, db
}

func get(r http.Handler, path string, lang ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if len(lang) > 0 {
		req.Header.Set("Accept-Language", lang[0])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func post(r http.Handler, path, body string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestCurrentInfo(t *testing.T) {
	r, db := setup(t)

	w := get(r, "/api/contact/info/current/")
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[contactapi.InfoDTO](t, w)
	assert.Equal(t, contact.DefaultCompanyName, info.Translations["company_name"])
	assert.Nil(t, info.Latitude)

	lat := 25.0339639
	require.NoError(t, db.Create(&contact.Info{
		Phone:    "02-1234-5678",
		Latitude: &lat,
		Translations: []contact.InfoTranslation{
			{Lang: "zh-tw", CompanyName: "慧繡雅集"},
			{Lang: "en", CompanyName: "Hui Embroidery", Description: "Studio"},
		},
	}).Error)

	info = decode[contactapi.InfoDTO](t, get(r, "/api/contact/info/current/", "en"))
	assert.Equal(t, "02-1234-5678", info.Phone)
	assert.Equal(t, "Hui Embroidery", info.Translations["company_name"])
	require.NotNil(t, info.Latitude)
	assert.InDelta(t, lat, *info.Latitude, 1e-6)
}

func TestSocial(t *testing.T) {
	r, db := setup(t)
	for i, s := range []contact.SocialMedia{
		{Platform: contact.PlatformWeChat, URL: "https://wechat.example/x", IsActive: true, Order: 2},
		{Platform: contact.PlatformFacebook, URL: "https://facebook.com/x", IsActive: true, Order: 1},
		{Platform: contact.PlatformLine, URL: "https://line.me/x", IsActive: false},
	} {
		require.NoError(t, db.Create(&s).Error, i)
	}

	w := get(r, "/api/contact/social/")
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[rest.Page[contactapi.SocialDTO]](t, w)
	require.EqualValues(t, 2, p.Count)
	assert.Equal(t, contact.PlatformFacebook, p.Results[0].Platform)
	assert.Equal(t, "微信", p.Results[1].PlatformDisplay)

	p = decode[rest.Page[contactapi.SocialDTO]](t, get(r, "/api/contact/social/?platform=wechat"))
	require.EqualValues(t, 1, p.Count)

	w = get(r, "/api/contact/social/"+p.Results[0].ID+"/")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitForm(t *testing.T) {
	r, db := setup(t)

	body := `{"name":"<b>Lin</b>","email":"lin@example.com","phone":"0912","subject":"Commission","message":"Hello & welcome"}`
	w := post(r, "/api/contact/form/", body, "X-Forwarded-For", "203.0.113.9, 10.0.0.1", "User-Agent", "test-agent")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[contactapi.FormCreatedResponse](t, w)
	assert.Equal(t, "您的訊息已成功送出，我們會盡快回覆您。", resp.Message)

	var sub contact.Submission
	require.NoError(t, db.First(&sub, "id = ?", resp.ID).Error)
	assert.Equal(t, "Lin", sub.Name)
	assert.Equal(t, "Hello & welcome", sub.Message)
	assert.Equal(t, contact.StatusNew, sub.Status)
	require.NotNil(t, sub.IPAddress)
	assert.Equal(t, "203.0.113.9", *sub.IPAddress)
	assert.Equal(t, "test-agent", sub.UserAgent)
}

func TestSubmitForm_Invalid(t *testing.T) {
	r, db := setup(t)

	w := post(r, "/api/contact/form/", `{"name":"Lin","email":"not-an-email","message":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decode[map[string][]string](t, w)
	assert.Equal(t, []string{"Enter a valid email address."}, errs["email"])
	assert.Equal(t, []string{"This field is required."}, errs["subject"])

	w = post(r, "/api/contact/form/", `{"name":"Lin","email":"a@b.co","subject":"s","message":"<script>x</script>"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var n int64
	require.NoError(t, db.Model(&contact.Submission{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestFormSuccess(t *testing.T) {
	r, _ := setup(t)
	w := get(r, "/api/contact/form/success/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"title":"訊息發送成功","message":"感謝您的來信，我們已收到您的訊息，會在 24 小時內回覆您。","redirect_delay":3}`, w.Body.String())
}

func TestFAQ(t *testing.T) {
	r, db := setup(t)
	var hidden contact.FAQ
	for i := range 7 {
		f := contact.FAQ{IsActive: i != 6, Order: i, Translations: []contact.FAQTranslation{
			{Lang: "zh-tw", Question: fmt.Sprintf("問題%d", i), Answer: "答"},
		}}
		require.NoError(t, db.Create(&f).Error)
		if i == 6 {
			hidden = f
		}
	}

	p := decode[rest.Page[contactapi.FAQDTO]](t, get(r, "/api/contact/faq/"))
	assert.EqualValues(t, 6, p.Count)
	assert.Equal(t, "問題0", p.Results[0].Translations["question"])

	w := get(r, "/api/contact/faq/popular/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]contactapi.FAQDTO](t, w), contact.PopularFAQLimit)

	assert.Equal(t, http.StatusNotFound, get(r, "/api/contact/faq/"+hidden.ID+"/").Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/contact/faq/"+p.Results[0].ID+"/").Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		xff    string
		want   any
	}{
		{"remote addr", "192.0.2.1:1234", "", "192.0.2.1"},
		{"forwarded first hop", "192.0.2.1:1234", "198.51.100.7, 10.0.0.1", "198.51.100.7"},
		{"ipv6", "[2001:db8::1]:443", "", "2001:db8::1"},
		{"garbage", "192.0.2.1:1234", "unknown", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			got := contactapi.ClientIP(req)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}
