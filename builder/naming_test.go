package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"static", "/static", "/static"},
		{"root", "/", "/"},
		{"single param", "/users/:id", "/users/{id}"},
		{"two params", "/users/:id/posts/:post_id", "/users/{id}/posts/{post_id}"},
		{"trailing slash after param", "/users/:id/", "/users/{id}/"},
		{"param mid path", "/users/:id/posts", "/users/{id}/posts"},
		{"no sigil is identity", "/users/{id}", "/users/{id}"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslatePath(tt.in))
		})
	}
}

func TestOperationID(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		want   string
	}{
		{"get with param", "GET", "/users/:id", "get_users_by_id"},
		{"simple post", "POST", "/test", "post_test"},
		{"nested params", "DELETE", "/users/:id/posts/:post_id", "delete_users_by_id_posts_by_post_id"},
		{"brace syntax", "GET", "/users/{id}", "get_users_by_id"},
		{"kebab segment", "GET", "/user-profiles", "get_user_profiles"},
		{"root", "GET", "/", "get"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OperationID(tt.method, tt.path))
		})
	}
}

func TestNormalizePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/openapi", "/openapi"},
		{"openapi", "/openapi"},
		{"/api/docs/", "/api/docs"},
		{"/api/docs///", "/api/docs"},
		{"", ""},
		{"/", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePrefix(tt.in), "prefix %q", tt.in)
	}
}

func TestSchemaTitle(t *testing.T) {
	assert.Equal(t, "UserResponse", schemaTitle("UserResponse"))
	assert.Equal(t, "UserResponse", schemaTitle("user_response"))
	assert.Equal(t, "ApiError", schemaTitle("ApiError"))
}
