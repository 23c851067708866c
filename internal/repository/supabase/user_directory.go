package supabase

import (
	"context"
	"net/http"
	"net/url"

	"privatemeetups/internal/domain"
)

type userDirectory struct {
	client *Client
}

func NewUserDirectory(client *Client) domain.UserDirectory {
	return &userDirectory{client: client}
}

func (r *userDirectory) GetName(ctx context.Context, userID string) (string, error) {
	query := url.Values{
		"id":     {eq(userID)},
		"select": {"name"},
	}
	var rows []struct {
		Name string `json:"name"`
	}
	err := r.client.do(ctx, "get user name", http.MethodGet, "users", query, "", nil, &rows)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", domain.ErrNotFound
	}
	return rows[0].Name, nil
}
