package layout

import (
	"errors"
	"fmt"
	"math/rand"

	"mazerooms/pkg/engine/logger"
	"mazerooms/pkg/engine/world"
	"mazerooms/pkg/game/generator"
	"mazerooms/pkg/game/rooms"
)

var (
	// ErrUnreachable is returned when a carved room cannot be walked to from the entrance
	ErrUnreachable = errors.New("room unreachable from entrance")

	// ErrAttemptsExhausted wraps the last failure once every attempt is used
	ErrAttemptsExhausted = errors.New("layout attempts exhausted")
)

// Build places every room in plan and carves them one at a time, in plan
// order, sharing rng. The first failure stops the build.
func Build(grid *world.Grid, plan Plan, rng *rand.Rand) (*World, error) {
	if err := plan.Place(grid, rng); err != nil {
		return nil, err
	}

	w := &World{Grid: grid, Rooms: plan.Rooms, Doors: make([]rooms.DoorResult, 0, len(plan.Rooms))}
	for _, r := range plan.Rooms {
		res, err := rooms.GenerateWithResult(r, grid, rng)
		if err != nil {
			return nil, err
		}
		w.Doors = append(w.Doors, res)
		if res.Extended() {
			logger.Debug("door extended corridor", "room", r.Name(), "door", res.Door.String(), "opened", res.Opened.String())
		}
	}
	return w, nil
}

// Builder generates a maze and carves a room list into it, starting over on a
// new seed when an attempt fails for a reason a different maze could fix.
type Builder struct {
	Generator        generator.GridGenerator
	Rows, Cols       int
	Rooms            []string
	MaxAttempts      int
	RequireReachable bool
}

// Build runs up to MaxAttempts attempts. Attempt n uses DeriveSeed(seed, n).
func (b *Builder) Build(seed int64) (*World, error) {
	attempts := max(b.MaxAttempts, 1)
	gen := b.Generator
	if gen == nil {
		gen = generator.DefaultGenerator
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		attemptSeed := DeriveSeed(seed, attempt)
		w, err := b.attempt(gen, attemptSeed)
		if err == nil {
			w.Seed = attemptSeed
			w.Attempts = attempt + 1
			logger.Info("layout built",
				"seed", seed,
				"attempt_seed", attemptSeed,
				"attempts", w.Attempts,
				"rooms", len(w.Rooms),
			)
			return w, nil
		}
		if !Retryable(err) {
			return nil, err
		}
		logger.Warning("layout attempt failed, retrying", "attempt", attempt+1, "seed", attemptSeed, "error", err)
		lastErr = err
	}
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, attempts, lastErr)
}

func (b *Builder) attempt(gen generator.GridGenerator, seed int64) (*World, error) {
	rng := rand.New(rand.NewSource(seed))
	grid := gen.Generate(b.Rows, b.Cols, rng)

	plan, err := NewPlan(b.Rooms)
	if err != nil {
		return nil, err
	}
	w, err := Build(grid, plan, rng)
	if err != nil {
		return nil, err
	}
	if b.RequireReachable {
		if lost := w.Unreachable(); len(lost) > 0 {
			return nil, fmt.Errorf("%d room(s), first %s: %w", len(lost), lost[0].Name(), ErrUnreachable)
		}
	}
	return w, nil
}

// Retryable reports whether a fresh maze might avoid err. Programming errors
// such as an unplaced room are never retried.
func Retryable(err error) bool {
	if errors.Is(err, rooms.ErrLocationNotSet) {
		return false
	}
	return errors.Is(err, rooms.ErrDoorCarveFailed) ||
		errors.Is(err, ErrNoPlacement) ||
		errors.Is(err, ErrUnreachable)
}

// DeriveSeed returns the seed for a given attempt; attempt 0 is seed itself
func DeriveSeed(seed int64, attempt int) int64 {
	return seed + int64(attempt)*1_000_003
}
