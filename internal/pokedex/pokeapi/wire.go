package pokeapi

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/manav8826/MCP-pokemon/internal/pokedex"
)

// Wire payloads decode only the fields the record needs; the catalog sends
// far more.

type pokemonPayload struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Effort   int `json:"effort"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		Ability struct {
			Name string `json:"name"`
		} `json:"ability"`
	} `json:"abilities"`
	Moves   []moveRef `json:"moves"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
}

type moveRef struct {
	Move struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"move"`
	VersionGroupDetails []struct {
		LevelLearnedAt int `json:"level_learned_at"`
	} `json:"version_group_details"`
}

type speciesPayload struct {
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
	FlavorTextEntries []struct {
		FlavorText string `json:"flavor_text"`
		Language   struct {
			Name string `json:"name"`
		} `json:"language"`
	} `json:"flavor_text_entries"`
}

type evolutionPayload struct {
	Chain evolutionNode `json:"chain"`
}

type evolutionNode struct {
	Species struct {
		Name string `json:"name"`
	} `json:"species"`
	EvolvesTo []evolutionNode `json:"evolves_to"`
}

type movePayload struct {
	Name string `json:"name"`
	Type struct {
		Name string `json:"name"`
	} `json:"type"`
	Power         *int `json:"power"`
	Accuracy      *int `json:"accuracy"`
	EffectChance  *int `json:"effect_chance"`
	EffectEntries []struct {
		ShortEffect string `json:"short_effect"`
		Language    struct {
			Name string `json:"name"`
		} `json:"language"`
	} `json:"effect_entries"`
}

// lastLevel returns the level of the ref's latest version-group entry, the
// sampling sort key.
func lastLevel(ref moveRef) int {
	if len(ref.VersionGroupDetails) == 0 {
		return 0
	}
	return ref.VersionGroupDetails[len(ref.VersionGroupDetails)-1].LevelLearnedAt
}

// walkChain returns every root-to-leaf name path, names capitalized.
func walkChain(node *evolutionNode) [][]string {
	name := capitalize(node.Species.Name)
	if len(node.EvolvesTo) == 0 {
		return [][]string{{name}}
	}
	var all [][]string
	for i := range node.EvolvesTo {
		for _, child := range walkChain(&node.EvolvesTo[i]) {
			all = append(all, append([]string{name}, child...))
		}
	}
	return all
}

// assembleMove turns a move resource into the record's move entry. The
// English short effect gets $effect_chance substituted; a missing chance
// substitutes the empty string.
func assembleMove(p *movePayload) *pokedex.Move {
	effect := "No effect description."
	for _, e := range p.EffectEntries {
		if e.Language.Name == "en" {
			chance := ""
			if p.EffectChance != nil {
				chance = strconv.Itoa(*p.EffectChance)
			}
			effect = strings.ReplaceAll(e.ShortEffect, "$effect_chance", chance)
			break
		}
	}
	return &pokedex.Move{
		Name:     titleCase(strings.ReplaceAll(p.Name, "-", " ")),
		Type:     p.Type.Name,
		Power:    p.Power,
		Accuracy: p.Accuracy,
		Effect:   effect,
	}
}

// assembleRecord builds the final record from the decoded payloads.
func assembleRecord(p *pokemonPayload, s *speciesPayload, evolutionPaths []string, moves []pokedex.Move) *pokedex.Pokemon {
	var stats pokedex.Stats
	var evYields []string
	for _, st := range p.Stats {
		switch st.Stat.Name {
		case "hp":
			stats.HP = st.BaseStat
		case "attack":
			stats.Attack = st.BaseStat
		case "defense":
			stats.Defense = st.BaseStat
		case "special-attack":
			stats.SpecialAttack = st.BaseStat
		case "special-defense":
			stats.SpecialDefense = st.BaseStat
		case "speed":
			stats.Speed = st.BaseStat
		}
		if st.Effort > 0 {
			evYields = append(evYields, fmt.Sprintf("%d %s", st.Effort, strings.ToUpper(st.Stat.Name)))
		}
	}

	types := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, t.Type.Name)
	}

	abilities := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		abilities = append(abilities, titleCase(strings.ReplaceAll(a.Ability.Name, "-", " ")))
	}

	flavor := "No Pokédex entry found."
	for _, ft := range s.FlavorTextEntries {
		if ft.Language.Name == "en" {
			flavor = strings.ReplaceAll(ft.FlavorText, "\n", " ")
			break
		}
	}

	return &pokedex.Pokemon{
		ID:             p.ID,
		Name:           capitalize(p.Name),
		Types:          types,
		Stats:          stats,
		Abilities:      abilities,
		Moves:          moves,
		EvolutionPaths: evolutionPaths,
		FlavorText:     flavor,
		EVYield:        strings.Join(evYields, ", "),
		SpriteURL:      p.Sprites.FrontDefault,
	}
}

// titleCase renders catalog kebab-case names for display: "thunder punch"
// becomes "Thunder Punch". A fresh caser per call keeps this safe under the
// concurrent move fetches.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// capitalize upper-cases the first rune and lower-cases the rest, the
// display casing for species names ("mr-mime" stays "Mr-mime").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}
