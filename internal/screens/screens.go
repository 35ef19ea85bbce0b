// Package screens classifies displays into spatial roles and answers
// directional neighbor queries. The map is rebuilt on demand from the
// current display set rather than cached, so hotplugging never leaves a
// stale layout behind.
package screens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/1broseidon/nudge/internal/platform"
)

// Role names a spatial position in the physical monitor arrangement.
type Role string

const (
	RoleBottom Role = "bottom"
	RoleCenter Role = "center"
	RoleTop    Role = "top"
	RoleLeft   Role = "left"
	RoleRight  Role = "right"
)

// ParseRole converts a CLI token to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBottom, RoleCenter, RoleTop, RoleLeft, RoleRight:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown screen role %q (want bottom, center, top, left or right)", s)
}

// BuildMap classifies all screens by anchoring on the primary display:
// screens whose horizontal center falls inside the anchor's x-range
// form the center column (ranked bottom-up by y), everything else goes
// to the sides (ranked by x). Name overrides win over classification.
func BuildMap(all []platform.Screen, overrides map[string]string) map[Role]platform.Screen {
	result := make(map[Role]platform.Screen)
	if len(all) == 0 {
		return result
	}

	anchor := all[0]
	for _, s := range all {
		if s.Primary {
			anchor = s
			break
		}
	}

	assigned := make(map[int]bool)

	// Overrides first: the configured name claims the role outright.
	for roleName, match := range overrides {
		if match == "" {
			continue
		}
		if s, ok := matchByName(all, assigned, match); ok {
			result[Role(roleName)] = s
			assigned[s.ID] = true
		}
	}

	var column, sides []platform.Screen
	for _, s := range all {
		if assigned[s.ID] {
			continue
		}
		cx := s.Frame.CenterX()
		if cx >= anchor.Frame.X && cx < anchor.Frame.MaxX() {
			column = append(column, s)
		} else {
			sides = append(sides, s)
		}
	}

	// Center column: largest y (lowest on the desk) is the bottom
	// role, then center, then top.
	sort.Slice(column, func(i, j int) bool {
		return column[i].Frame.Y > column[j].Frame.Y
	})
	columnRoles := []Role{RoleBottom, RoleCenter, RoleTop}
	for i, s := range column {
		if i >= len(columnRoles) {
			break
		}
		if _, taken := result[columnRoles[i]]; taken {
			continue
		}
		result[columnRoles[i]] = s
	}

	// Sides: nearest unclaimed screen west/east of the anchor.
	sort.Slice(sides, func(i, j int) bool {
		return sides[i].Frame.X < sides[j].Frame.X
	})
	for _, s := range sides {
		if s.Frame.CenterX() < anchor.Frame.X {
			if _, taken := result[RoleLeft]; !taken {
				result[RoleLeft] = s
			}
		} else {
			if _, taken := result[RoleRight]; !taken {
				result[RoleRight] = s
			}
		}
	}

	return result
}

// matchByName finds the unclaimed screen for an override. Exact
// case-insensitive names win before substring matching: a "DP-1"
// override must not land on the laptop's eDP-1 panel.
func matchByName(all []platform.Screen, assigned map[int]bool, match string) (platform.Screen, bool) {
	for _, s := range all {
		if !assigned[s.ID] && strings.EqualFold(s.Name, match) {
			return s, true
		}
	}
	lower := strings.ToLower(match)
	for _, s := range all {
		if !assigned[s.ID] && strings.Contains(strings.ToLower(s.Name), lower) {
			return s, true
		}
	}
	return platform.Screen{}, false
}

// Neighbor returns the nearest screen strictly in the given direction
// from the source screen, by center distance on the travel axis.
func Neighbor(all []platform.Screen, from platform.Screen, dir Direction) (platform.Screen, bool) {
	var best platform.Screen
	found := false
	fx, fy := from.Frame.CenterX(), from.Frame.CenterY()

	for _, s := range all {
		if s.ID == from.ID {
			continue
		}
		cx, cy := s.Frame.CenterX(), s.Frame.CenterY()
		var ahead bool
		switch dir {
		case West:
			ahead = cx < fx
		case East:
			ahead = cx > fx
		case North:
			ahead = cy < fy
		case South:
			ahead = cy > fy
		}
		if !ahead {
			continue
		}
		if !found || closer(s, best, fx, fy) {
			best = s
			found = true
		}
	}
	return best, found
}

// Direction is a compass direction for screen-to-screen queries.
type Direction int

const (
	West Direction = iota
	East
	North
	South
)

func closer(a, b platform.Screen, fx, fy float64) bool {
	return dist2(a, fx, fy) < dist2(b, fx, fy)
}

func dist2(s platform.Screen, fx, fy float64) float64 {
	dx := s.Frame.CenterX() - fx
	dy := s.Frame.CenterY() - fy
	return dx*dx + dy*dy
}
