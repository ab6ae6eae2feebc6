// Package client is a typed Go client for the bashir.v1 services. It keeps
// the signed-in session, attaches the bearer token to every call, runs the
// access policy locally and loads whole screens with concurrent fetches.
package client

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"connectrpc.com/connect"

	"github.com/saadistik/Bashir.inc/internal/access"
	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/session"
	"github.com/saadistik/Bashir.inc/pkg/api"
	"github.com/saadistik/Bashir.inc/pkg/api/apiconnect"
)

// Client talks to a bashir server on behalf of one user.
type Client struct {
	session *session.Session
	guard   ScopeGuard

	mu    sync.RWMutex
	token string

	auth       apiconnect.AuthServiceClient
	profiles   apiconnect.ProfileServiceClient
	navigation apiconnect.NavigationServiceClient
	companies  apiconnect.CompanyServiceClient
	tussles    apiconnect.TussleServiceClient
	receipts   apiconnect.ReceiptServiceClient
	workers    apiconnect.WorkerServiceClient
	calendar   apiconnect.CalendarServiceClient
	dashboard  apiconnect.DashboardServiceClient
}

// New creates a signed-out client for the server at baseURL. A nil
// httpClient uses http.DefaultClient.
func New(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{session: session.New()}
	opts = append([]connect.ClientOption{connect.WithInterceptors(c.bearer())}, opts...)

	c.auth = apiconnect.NewAuthServiceClient(httpClient, baseURL, opts...)
	c.profiles = apiconnect.NewProfileServiceClient(httpClient, baseURL, opts...)
	c.navigation = apiconnect.NewNavigationServiceClient(httpClient, baseURL, opts...)
	c.companies = apiconnect.NewCompanyServiceClient(httpClient, baseURL, opts...)
	c.tussles = apiconnect.NewTussleServiceClient(httpClient, baseURL, opts...)
	c.receipts = apiconnect.NewReceiptServiceClient(httpClient, baseURL, opts...)
	c.workers = apiconnect.NewWorkerServiceClient(httpClient, baseURL, opts...)
	c.calendar = apiconnect.NewCalendarServiceClient(httpClient, baseURL, opts...)
	c.dashboard = apiconnect.NewDashboardServiceClient(httpClient, baseURL, opts...)
	return c
}

// bearer attaches the current token to outgoing requests.
func (c *Client) bearer() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token := c.Token(); token != "" && req.Spec().IsClient {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}

// Token returns the bearer token, or "" when signed out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Session returns a copy of the signed-in state.
func (c *Client) Session() session.Snapshot {
	return c.session.Snapshot()
}

// Login signs in and populates the session. It returns the landing screen
// for the user's role.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
		Username: username,
		Password: password,
	}))
	if err != nil {
		return "", err
	}

	c.setToken(resp.Msg.Token)
	user := resp.Msg.User
	c.session.Populate(session.Identity{UserID: user.ID, Username: user.Username}, toProfile(user))
	return resp.Msg.Home, nil
}

// Resume signs in with a token kept from an earlier login. The session is
// loading until the profile is fetched; a token the server rejects leaves
// the client signed out.
func (c *Client) Resume(ctx context.Context, token string) error {
	c.setToken(token)
	c.session.Begin(session.Identity{})

	resp, err := c.auth.GetCurrentUser(ctx, connect.NewRequest(&api.GetCurrentUserRequest{}))
	if err != nil {
		c.setToken("")
		c.session.Clear()
		return err
	}
	user := resp.Msg.User
	c.session.Populate(session.Identity{UserID: user.ID, Username: user.Username}, toProfile(user))
	return nil
}

// Logout clears the session. The local state is cleared even when the
// server call fails.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.auth.Logout(ctx, connect.NewRequest(&api.LogoutRequest{}))
	c.setToken("")
	c.session.Clear()
	c.guard.Enter("")
	return err
}

// Route runs the access policy against the local session and returns the
// screen that renders for path.
func (c *Client) Route(path string) (access.Result, error) {
	return access.Resolve(c.session.Snapshot(), path)
}

// Navigate asks the server to route path for the signed-in user.
func (c *Client) Navigate(ctx context.Context, path string) (*api.NavigateResponse, error) {
	resp, err := c.navigation.Navigate(ctx, connect.NewRequest(&api.NavigateRequest{Path: path}))
	if err != nil {
		return nil, fmt.Errorf("failed to navigate to %s: %w", path, err)
	}
	return resp.Msg, nil
}

// The service clients share the client's token.

func (c *Client) Auth() apiconnect.AuthServiceClient {
	return c.auth
}

func (c *Client) Profiles() apiconnect.ProfileServiceClient {
	return c.profiles
}

func (c *Client) Companies() apiconnect.CompanyServiceClient {
	return c.companies
}

func (c *Client) Tussles() apiconnect.TussleServiceClient {
	return c.tussles
}

func (c *Client) Receipts() apiconnect.ReceiptServiceClient {
	return c.receipts
}

func (c *Client) Workers() apiconnect.WorkerServiceClient {
	return c.workers
}

func (c *Client) Calendar() apiconnect.CalendarServiceClient {
	return c.calendar
}

func (c *Client) DashboardService() apiconnect.DashboardServiceClient {
	return c.dashboard
}

func (c *Client) Navigation() apiconnect.NavigationServiceClient {
	return c.navigation
}

func toProfile(u api.User) *models.Profile {
	role := models.Role(u.Role)
	if !role.Valid() {
		return nil
	}
	return &models.Profile{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     role,
		Salary:   u.Salary,
		IDCard:   u.IDCard,
	}
}
