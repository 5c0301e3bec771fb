package actors

import (
	"github.com/leonelquinteros/gotext"
)

// MonsterKind selects a monster template
type MonsterKind int

const (
	MonsterWeak MonsterKind = iota
	MonsterStrong
)

// ItemKind selects a consumable template
type ItemKind int

const (
	ItemHealthPotion ItemKind = iota
	ItemLightningBoltScroll
	ItemFireballScroll
	ItemConfusionScroll
)

// Factory builds actors at a placement cell. Generation decides where and
// which kind; the factory decides what that kind is.
type Factory interface {
	CreateMonster(x, y int, kind MonsterKind) *Actor
	CreateItem(x, y int, kind ItemKind) *Actor
}

// MonsterTemplate is the tuning of one monster kind
type MonsterTemplate struct {
	Glyph   rune
	Color   string
	HP      int
	Defense int
	Power   int
}

// ItemTemplate is the tuning of one item kind
type ItemTemplate struct {
	Glyph  rune
	Color  string
	Amount int
	Range  int
}

// DefaultFactory creates the stock bestiary and consumables.
type DefaultFactory struct {
	Monsters map[MonsterKind]MonsterTemplate
	Items    map[ItemKind]ItemTemplate
}

// NewDefaultFactory returns a factory with the stock stat tables
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{
		Monsters: map[MonsterKind]MonsterTemplate{
			MonsterWeak:   {Glyph: 'o', Color: "rgb(63,127,63)", HP: 10, Defense: 0, Power: 3},
			MonsterStrong: {Glyph: 'T', Color: "rgb(0,127,0)", HP: 16, Defense: 1, Power: 4},
		},
		Items: map[ItemKind]ItemTemplate{
			ItemHealthPotion:        {Glyph: '!', Color: "rgb(128,0,128)", Amount: 4},
			ItemLightningBoltScroll: {Glyph: '#', Color: "rgb(255,255,63)", Amount: 20, Range: 5},
			ItemFireballScroll:      {Glyph: '#', Color: "rgb(255,255,63)", Amount: 12, Range: 3},
			ItemConfusionScroll:     {Glyph: '#', Color: "rgb(255,255,63)", Amount: 12, Range: 5},
		},
	}
}

// CreateMonster builds a blocking monster on (x, y)
func (f *DefaultFactory) CreateMonster(x, y int, kind MonsterKind) *Actor {
	tpl := f.Monsters[kind]
	return &Actor{
		Name:   kind.Name(),
		Glyph:  tpl.Glyph,
		Color:  tpl.Color,
		X:      x,
		Y:      y,
		Blocks: true,
		Destructible: &Destructible{
			MaxHP:      tpl.HP,
			HP:         tpl.HP,
			Defense:    tpl.Defense,
			CorpseName: kind.CorpseName(),
		},
		Attacker: &Attacker{Power: tpl.Power},
	}
}

// CreateItem builds a non-blocking item on (x, y)
func (f *DefaultFactory) CreateItem(x, y int, kind ItemKind) *Actor {
	tpl := f.Items[kind]
	return &Actor{
		Name:     kind.Name(),
		Glyph:    tpl.Glyph,
		Color:    tpl.Color,
		X:        x,
		Y:        y,
		Pickable: &Pickable{Kind: kind, Amount: tpl.Amount, Range: tpl.Range},
	}
}

// NewPlayer creates the player actor at the origin
func NewPlayer() *Actor {
	return &Actor{
		Name:   gotext.Get("player"),
		Glyph:  '@',
		Color:  "rgb(255,255,255)",
		Blocks: true,
		Destructible: &Destructible{
			MaxHP:      30,
			HP:         30,
			Defense:    2,
			CorpseName: gotext.Get("your cadaver"),
		},
		Attacker: &Attacker{Power: 5},
	}
}

// Name returns the translated monster name. Uses gotext.Get with constant
// keys to satisfy vet.
func (k MonsterKind) Name() string {
	switch k {
	case MonsterStrong:
		return gotext.Get("troll")
	default:
		return gotext.Get("orc")
	}
}

// CorpseName returns the translated name of the monster's remains
func (k MonsterKind) CorpseName() string {
	switch k {
	case MonsterStrong:
		return gotext.Get("troll carcass")
	default:
		return gotext.Get("dead orc")
	}
}

// Name returns the translated item name
func (k ItemKind) Name() string {
	switch k {
	case ItemLightningBoltScroll:
		return gotext.Get("scroll of lightning bolt")
	case ItemFireballScroll:
		return gotext.Get("scroll of fireball")
	case ItemConfusionScroll:
		return gotext.Get("scroll of confusion")
	default:
		return gotext.Get("health potion")
	}
}
