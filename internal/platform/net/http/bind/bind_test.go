package bind

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "internhub/internal/platform/errors"
)

type posting struct {
	Title   string   `json:"title" validate:"required,min=3"`
	Stipend int      `json:"stipend" validate:"gte=0"`
	Skills  []string `json:"skills" validate:"min=1,dive,required"`
	Email   string   `json:"contact_email" validate:"required,email"`
	Mode    string   `json:"mode" validate:"omitempty,bind_test_mode"`
}

func req(method, body string) *http.Request {
	return httptest.NewRequest(method, "/", strings.NewReader(body))
}

func init() {
	_ = RegisterEnum("bind_test_mode", "{0} must be remote or on-site", func(s string) bool {
		return s == "remote" || s == "on-site"
	})
}

func TestParseJSON_OK(t *testing.T) {
	t.Parallel()

	in, err := ParseJSON[posting](req(http.MethodPost,
		`{"title":"Go Intern","stipend":0,"skills":["Go"],"contact_email":"hr@acme.io","mode":"remote"}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if in.Title != "Go Intern" || len(in.Skills) != 1 || in.Skills[0] != "Go" {
		t.Fatalf("unexpected decode %+v", in)
	}
}

func TestParseJSON_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		body  string
		code  perr.ErrorCode
		field string
		msg   string
	}{
		{"empty", ``, perr.ErrorCodeJSON, "", "empty body"},
		{"broken", `{"title":`, perr.ErrorCodeJSON, "", "invalid JSON"},
		{"unknown field", `{"title":"abc","nope":1}`, perr.ErrorCodeJSON, "", "unknown field"},
		{"trailing", `{"title":"abc"} {}`, perr.ErrorCodeJSON, "", "trailing"},
		{
			"short title",
			`{"title":"ab","skills":["Go"],"contact_email":"a@b.io"}`,
			perr.ErrorCodeValidation, "title", "title must be at least 3",
		},
		{
			"no skills",
			`{"title":"abc","skills":[],"contact_email":"a@b.io"}`,
			perr.ErrorCodeValidation, "skills", "skills must be at least 1",
		},
		{
			"bad email",
			`{"title":"abc","skills":["Go"],"contact_email":"nope"}`,
			perr.ErrorCodeValidation, "contact_email", "valid email",
		},
		{
			"custom enum",
			`{"title":"abc","skills":["Go"],"contact_email":"a@b.io","mode":"moon"}`,
			perr.ErrorCodeValidation, "mode", "mode must be remote or on-site",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON[posting](req(http.MethodPost, tc.body))
			e, ok := perr.As(err)
			if !ok {
				t.Fatalf("want *perr.Error, got %T %v", err, err)
			}
			if e.Code() != tc.code || e.Field() != tc.field {
				t.Fatalf("got code %s field %q, want %s %q", e.Code(), e.Field(), tc.code, tc.field)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("expected %q in %q", tc.msg, err.Error())
			}
		})
	}
}

func TestParseJSON_EmptyBodyOnGetIsFine(t *testing.T) {
	t.Parallel()

	if _, err := ParseJSON[posting](req(http.MethodGet, "")); err != nil {
		t.Fatalf("GET without body: %v", err)
	}
}

func TestParseJSON_AllowEmptyBody(t *testing.T) {
	t.Parallel()

	type opt struct {
		Page int `json:"page"`
	}
	v, err := ParseJSON[opt](req(http.MethodPost, ""), JSONOptions{AllowEmptyBody: true})
	if err != nil || v.Page != 0 {
		t.Fatalf("AllowEmptyBody: %+v %v", v, err)
	}
}

func TestParseJSON_MaxBytes(t *testing.T) {
	t.Parallel()

	_, err := ParseJSON[posting](req(http.MethodPost, `{"title":"a very long title indeed"}`), JSONOptions{MaxBytes: 8})
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected json error got %v", err)
	}
}

func TestValidate_NonStructsPass(t *testing.T) {
	t.Parallel()

	if err := Validate(42); err != nil {
		t.Fatalf("Validate(int): %v", err)
	}
	if err := Validate((*posting)(nil)); err != nil {
		t.Fatalf("Validate(nil ptr): %v", err)
	}
	if err := Validate(&posting{}); err == nil {
		t.Fatalf("zero posting should fail validation")
	}
}

func TestValidationFieldAndMessage_Foreign(t *testing.T) {
	t.Parallel()

	if f, m := ValidationFieldAndMessage(errors.New("plain")); f != "" || m != "plain" {
		t.Fatalf("got field %q message %q", f, m)
	}
}
