// Package access decides, for a session and a requested screen path, whether
// the screen may be shown or where the visitor is sent instead.
//
// Unauthorized visits are never reported as errors: the visitor is silently
// moved to the login screen or to the home screen of their role.
package access

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/session"
)

// Screen paths with special meaning to the policy.
const (
	PathRoot      = "/"
	PathLogin     = "/login"
	PathHome      = "/home"
	PathDashboard = "/dashboard"
)

// maxHops bounds Resolve. Any chain longer than this is a loop.
const maxHops = 8

// ErrRedirectLoop is returned by Resolve when redirects never settle.
var ErrRedirectLoop = errors.New("redirect loop")

// Requirement is what a route demands of the visitor.
type Requirement int

const (
	// Public routes are reachable without an identity.
	Public Requirement = iota
	// RequiresAuth routes need a signed-in identity with a profile.
	RequiresAuth
	// RequiresRole routes additionally need Route.Role.
	RequiresRole
)

// Route is one screen of the application.
type Route struct {
	Pattern     string
	Requirement Requirement
	Role        models.Role
}

// Routes is the screen table. Segments written as {name} match any single
// non-empty segment.
var Routes = []Route{
	{Pattern: PathLogin, Requirement: Public},
	{Pattern: PathHome, Requirement: RequiresRole, Role: models.RoleEmployee},
	{Pattern: PathDashboard, Requirement: RequiresRole, Role: models.RoleOwner},
	{Pattern: "/companies", Requirement: RequiresAuth},
	{Pattern: "/companies/{id}", Requirement: RequiresAuth},
	{Pattern: "/tussles/{id}", Requirement: RequiresAuth},
	{Pattern: "/calendar", Requirement: RequiresAuth},
	{Pattern: "/workers", Requirement: RequiresAuth},
	{Pattern: "/profile", Requirement: RequiresAuth},
}

// Kind tags a Decision.
type Kind int

const (
	// Allow shows the requested screen.
	Allow Kind = iota
	// Redirect sends the visitor to Decision.Location.
	Redirect
	// Pending means the profile is still loading; show a neutral loading state.
	Pending
)

func (k Kind) String() string {
	switch k {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	case Pending:
		return "pending"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Decision is the outcome of one navigation.
type Decision struct {
	Kind Kind

	// Path is the normalized requested path.
	Path string

	// Location is the redirect target when Kind is Redirect.
	Location string
}

func (d Decision) String() string {
	if d.Kind == Redirect {
		return fmt.Sprintf("%s -> %s", d.Path, d.Location)
	}
	return fmt.Sprintf("%s: %s", d.Path, d.Kind)
}

// HomeFor is the landing screen of a role.
func HomeFor(role models.Role) string {
	if role == models.RoleOwner {
		return PathDashboard
	}
	return PathHome
}

// Decide applies the policy to one navigation.
//
// An identity whose profile is missing or carries an unknown role is routed
// like a signed-out visitor, since no home screen would admit it.
func Decide(s session.Snapshot, requested string) Decision {
	p := Normalize(requested)
	if s.Loading {
		return Decision{Kind: Pending, Path: p}
	}

	signedIn := s.Authenticated() && s.Profile != nil && s.Profile.Role.Valid()
	role := s.Role()

	if p == PathRoot {
		if signedIn {
			return redirect(p, HomeFor(role))
		}
		return redirect(p, PathLogin)
	}

	route, ok := Match(p)
	if !ok {
		return redirect(p, PathRoot)
	}

	if route.Requirement == Public {
		if signedIn {
			return redirect(p, HomeFor(role))
		}
		return Decision{Kind: Allow, Path: p}
	}

	if !signedIn {
		return redirect(p, PathLogin)
	}
	if route.Requirement == RequiresRole && role != route.Role {
		return redirect(p, HomeFor(role))
	}
	return Decision{Kind: Allow, Path: p}
}

// Result is the outcome of following a navigation to its end.
type Result struct {
	// Terminal is the screen finally shown; empty when Pending.
	Terminal string

	// Pending is true if the profile was still loading.
	Pending bool

	// Chain lists every decision taken, the last one being Allow or Pending.
	Chain []Decision
}

// Resolve follows redirects from requested until a screen is allowed.
func Resolve(s session.Snapshot, requested string) (Result, error) {
	var res Result
	current := requested
	for hop := 0; hop < maxHops; hop++ {
		d := Decide(s, current)
		res.Chain = append(res.Chain, d)
		switch d.Kind {
		case Allow:
			res.Terminal = d.Path
			return res, nil
		case Pending:
			res.Pending = true
			return res, nil
		}
		current = d.Location
	}
	return res, fmt.Errorf("%w: %v", ErrRedirectLoop, res.Chain)
}

// Match finds the route for a normalized path.
func Match(p string) (Route, bool) {
	segs := splitPath(p)
	for _, r := range Routes {
		if matchSegments(splitPath(r.Pattern), segs) {
			return r, true
		}
	}
	return Route{}, false
}

// Normalize strips query and fragment, cleans the path and drops any
// trailing slash. The empty path is the root.
func Normalize(raw string) string {
	if u, err := url.Parse(raw); err == nil {
		raw = u.Path
	}
	if raw == "" {
		return PathRoot
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return path.Clean(raw)
}

func redirect(from, to string) Decision {
	return Decision{Kind: Redirect, Path: from, Location: to}
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchSegments(pattern, segs []string) bool {
	if len(pattern) != len(segs) {
		return false
	}
	for i, ps := range pattern {
		if strings.HasPrefix(ps, "{") && strings.HasSuffix(ps, "}") {
			if segs[i] == "" {
				return false
			}
			continue
		}
		if ps != segs[i] {
			return false
		}
	}
	return true
}
