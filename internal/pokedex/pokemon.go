// Package pokedex defines the creature record model and the resolution
// manager that serves records from a cache tier backed by the remote catalog.
package pokedex

// Stats holds the six base stats of a creature. Values come straight from the
// remote catalog and never change after the record is built.
type Stats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// Total returns the base stat total.
func (s Stats) Total() int {
	return s.HP + s.Attack + s.Defense + s.SpecialAttack + s.SpecialDefense + s.Speed
}

// Move is a single sampled move. Power and Accuracy are nil when the catalog
// has no value for them; a move whose power is nil or zero deals no damage.
type Move struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Power    *int   `json:"power"`
	Accuracy *int   `json:"accuracy"`
	Effect   string `json:"effect"`
}

// Damaging reports whether the move carries usable power.
func (m Move) Damaging() bool {
	return m.Power != nil && *m.Power > 0
}

// PowerValue returns the move's power, or 0 for a powerless move.
func (m Move) PowerValue() int {
	if m.Power == nil {
		return 0
	}
	return *m.Power
}

// Pokemon is the complete record for a single creature: identity, typing,
// stats, and the presentation extras (abilities, evolution paths, flavor
// text). Records are immutable once built and shared freely across battles.
type Pokemon struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Types          []string `json:"types"`
	Stats          Stats    `json:"stats"`
	Abilities      []string `json:"abilities"`
	Moves          []Move   `json:"moves"`
	EvolutionPaths []string `json:"evolution_paths"`
	FlavorText     string   `json:"flavor_text"`
	EVYield        string   `json:"ev_yield"`
	SpriteURL      string   `json:"sprite_url"`
}
