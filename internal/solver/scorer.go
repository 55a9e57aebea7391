package solver

import "github.com/heartmarshall/spellingbee/internal/domain"

// Score computes the puzzle point value of a validated word and reports
// whether it is a pangram. Four-letter words are worth 1 point, longer words
// their length; pangrams add pangramBonus on top. Pure; any validated word
// can be scored.
func Score(word string, p *domain.Puzzle, pangramBonus int) (points int, pangram bool) {
	pangram = p.IsPangram(word)

	// Puzzle rule: the minimum-size word is worth a single point.
	points = len(word)
	if len(word) == 4 {
		points = 1
	}
	if pangram {
		points += pangramBonus
	}
	return points, pangram
}
