package engine

// CheckDie is the die every check rolls
const CheckDie = 20

// RollCheckInput contains the bonus added to the roll
type RollCheckInput struct {
	Bonus int
}

// RollCheckOutput contains the die result and the total
type RollCheckOutput struct {
	Roll  int
	Bonus int
	Total int
}
