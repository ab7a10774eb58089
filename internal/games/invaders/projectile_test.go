package invaders

import (
	"math"
	"testing"
	"time"
)

func TestProjectileShoot(t *testing.T) {
	p := NewProjectile(2, 10, 100)

	if p.Active() {
		t.Fatal("New projectile should be inactive")
	}
	if !p.Shoot(50, 200, DirectionUp) {
		t.Fatal("Shoot on an idle projectile should succeed")
	}
	if p.X != 49 || p.Y != 200 {
		t.Errorf("Expected top-left (49, 200), got (%v, %v)", p.X, p.Y)
	}

	// In flight: rejected without moving
	if p.Shoot(10, 10, DirectionDown) {
		t.Error("Shoot on an active projectile should fail")
	}
	if p.X != 49 || p.Direction != DirectionUp {
		t.Error("Rejected shot must not change the projectile")
	}

	p.Deactivate()
	if !p.Shoot(10, 10, DirectionDown) {
		t.Error("Shoot after Deactivate should succeed")
	}
}

func TestProjectileAdvance(t *testing.T) {
	tests := []struct {
		name    string
		dir     Direction
		dt      time.Duration
		wantY   float64
		impactY float64
	}{
		{"up", DirectionUp, 100 * time.Millisecond, 90, 90},
		{"down", DirectionDown, 100 * time.Millisecond, 110, 120},
		{"zero dt", DirectionDown, 0, 100, 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(1, 10, 100)
			p.Shoot(5, 100, tt.dir)
			p.Advance(tt.dt)

			if math.Abs(p.Y-tt.wantY) > 1e-9 {
				t.Errorf("Expected Y %v, got %v", tt.wantY, p.Y)
			}
			if math.Abs(p.ImpactY()-tt.impactY) > 1e-9 {
				t.Errorf("Expected ImpactY %v, got %v", tt.impactY, p.ImpactY())
			}
			if p.Rect().Top != p.Y {
				t.Errorf("Rect not updated: top %v, Y %v", p.Rect().Top, p.Y)
			}
		})
	}
}

func TestInactiveProjectileDoesNotMove(t *testing.T) {
	p := NewProjectile(1, 10, 100)
	p.Shoot(5, 100, DirectionUp)
	p.Deactivate()

	p.Advance(time.Second)
	if p.Y != 100 {
		t.Errorf("Inactive projectile moved to %v", p.Y)
	}
}

func TestProjectilePoolRoundRobin(t *testing.T) {
	pool := NewProjectilePool(3, 1, 10, 100)

	for i := 0; i < 3; i++ {
		if pool.Next() != i {
			t.Fatalf("Expected cursor %d, got %d", i, pool.Next())
		}
		if !pool.Fire(float64(i*10), 0, DirectionDown) {
			t.Fatalf("Fire %d should succeed", i)
		}
	}

	if pool.Next() != 0 {
		t.Errorf("Expected cursor to wrap to 0, got %d", pool.Next())
	}

	// Slot 0 still in flight: fire fails and the cursor stays put
	if pool.Fire(0, 0, DirectionDown) {
		t.Error("Fire into a busy slot should fail")
	}
	if pool.Next() != 0 {
		t.Errorf("Cursor moved on failure: %d", pool.Next())
	}

	// Freeing another slot does not help; only the slot under the cursor counts
	pool.Slot(1).Deactivate()
	if pool.Fire(0, 0, DirectionDown) {
		t.Error("Fire should only use the slot under the cursor")
	}

	pool.Slot(0).Deactivate()
	if !pool.Fire(0, 0, DirectionDown) {
		t.Error("Fire into a freed slot should succeed")
	}
	if pool.Next() != 1 {
		t.Errorf("Expected cursor 1, got %d", pool.Next())
	}
}

func TestProjectilePoolLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 10, 10},
		{"zero clamps to one", 0, 1},
		{"above capacity", PoolCapacity + 50, PoolCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewProjectilePool(tt.limit, 1, 10, 100)
			if pool.Limit() != tt.want {
				t.Errorf("Expected limit %d, got %d", tt.want, pool.Limit())
			}

			for i := 0; i < tt.want+5; i++ {
				pool.Fire(0, 0, DirectionDown)
			}
			if pool.ActiveCount() != tt.want {
				t.Errorf("Expected %d active, got %d", tt.want, pool.ActiveCount())
			}
			if pool.Len() != PoolCapacity {
				t.Errorf("Expected capacity %d, got %d", PoolCapacity, pool.Len())
			}
		})
	}
}
