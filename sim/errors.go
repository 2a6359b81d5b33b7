/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import "fmt"

// ConfigError indicates that a caller supplied an invalid tournament
// parameter (bracket size, best-of length, trial count, or schedule).
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %v: %v", e.Field, e.Reason)
}

// UnknownPlayerError indicates that a player named in the round 1 draw has
// no entry in the ratings table. This is fatal; simulating with a defaulted
// rating would silently produce meaningless probabilities.
type UnknownPlayerError struct {
	Name string
}

func (e *UnknownPlayerError) Error() string {
	return fmt.Sprintf("no rating for player %q", e.Name)
}
