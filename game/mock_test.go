package game

// scriptedDice replays fixed Intn results in order.
type scriptedDice struct {
	draws []int
	calls []int
}

func (d *scriptedDice) Intn(n int) int {
	d.calls = append(d.calls, n)
	if len(d.draws) == 0 {
		panic("scriptedDice: no draws left")
	}
	v := d.draws[0]
	d.draws = d.draws[1:]
	return v
}

// rolls scripts dice faces (1-based) as Intn draws.
func rolls(faces ...int) *scriptedDice {
	draws := make([]int, len(faces))
	for i, f := range faces {
		draws[i] = f - 1
	}
	return &scriptedDice{draws: draws}
}

func newTestRegistry(territories ...Territory) *Registry {
	reg, err := NewRegistry(territories)
	if err != nil {
		panic(err)
	}
	return reg
}
