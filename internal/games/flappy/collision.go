package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// hitsObstacle reports whether the body overlaps any obstacle half.
func hitsObstacle(body core.Box, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if body.Overlaps(o.Box()) {
			return true
		}
	}
	return false
}

// blockCoins marks live coins covered by an obstacle half as blocked.
func blockCoins(coins []Coin, obstacles []Obstacle) {
	for i := range coins {
		if !coins[i].Live() {
			continue
		}
		for _, o := range obstacles {
			if coins[i].Box().Overlaps(o.Box()) {
				coins[i].Blocked = true
				break
			}
		}
	}
}

// collectCoins marks live coins touched by the body as collected and
// returns how many were collected.
func collectCoins(body core.Box, coins []Coin) int {
	n := 0
	for i := range coins {
		if coins[i].Live() && body.Overlaps(coins[i].Box()) {
			coins[i].Collected = true
			n++
		}
	}
	return n
}

// passObstacles marks lower halves the body has fully passed and returns
// how many were newly passed. Each pair scores at most once.
func passObstacles(bodyX float64, obstacles []Obstacle) int {
	n := 0
	for i := range obstacles {
		o := &obstacles[i]
		if o.Upper || o.Scored {
			continue
		}
		if bodyX > o.Right() {
			o.Scored = true
			n++
		}
	}
	return n
}
