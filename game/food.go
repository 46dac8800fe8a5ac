package game

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// FoodKind selects the score, speed effect and color of a food item
type FoodKind uint8

const (
	FoodRed FoodKind = iota
	FoodGreen
	FoodBlue

	foodKindCount
)

type foodTraits struct {
	scoreValue     int
	speedIncrement float64
	color          RGB
	name           string
}

var foodTable = [foodKindCount]foodTraits{
	FoodRed:   {scoreValue: 1, speedIncrement: 0.02, color: RGB{255, 0, 0}, name: "red"},
	FoodGreen: {scoreValue: 2, speedIncrement: 0.05, color: RGB{0, 255, 0}, name: "green"},
	// Negative effect: slows the snake down
	FoodBlue: {scoreValue: 3, speedIncrement: -0.01, color: RGB{0, 0, 255}, name: "blue"},
}

// FoodKinds returns every kind in spawn order
func FoodKinds() []FoodKind {
	return []FoodKind{FoodRed, FoodGreen, FoodBlue}
}

func (k FoodKind) ScoreValue() int         { return foodTable[k].scoreValue }
func (k FoodKind) SpeedIncrement() float64 { return foodTable[k].speedIncrement }
func (k FoodKind) Color() RGB              { return foodTable[k].color }
func (k FoodKind) String() string          { return foodTable[k].name }

// Food is a consumable cell, all effects derive from its kind
type Food struct {
	Position Point
	Kind     FoodKind
}

func (f Food) ScoreValue() int         { return f.Kind.ScoreValue() }
func (f Food) SpeedIncrement() float64 { return f.Kind.SpeedIncrement() }
func (f Food) Color() RGB              { return f.Kind.Color() }
