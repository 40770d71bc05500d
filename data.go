/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Static game data for the Shadow Hunters table: character rosters,
// area cards, the three draw decks, and the seat repartition table.
// Card and character text is kept in the original French, as printed.

package main

import (
	"fmt"
	"sort"
	"strings"
)

type Alignment string

const (
	AlignShadow  Alignment = "Shadow"
	AlignNeutral Alignment = "Neutral"
	AlignHunter  Alignment = "Hunter"
)

// alignments fixes the iteration order over the rosters.
var alignments = []Alignment{AlignShadow, AlignNeutral, AlignHunter}

// Archetype is one printed character card within an alignment's roster.
type Archetype struct {
	Name        string `json:"name"`
	HP          int    `json:"hp"`
	Victory     string `json:"victory"`
	Ability     string `json:"ability"`
	AbilityDesc string `json:"ability_desc"`
}

var rosters = map[Alignment][]Archetype{
	AlignShadow: {
		{
			Name:        "Métamorphe",
			HP:          11,
			Victory:     "Tous les personnages Hunter sont morts ou 3 personnages Neutres sont morts.",
			Ability:     "Pouvoir permanent : Imitation",
			AbilityDesc: "Vous pouvez mentir (sans avoir à révéler votre identité) lorsqu'on vous donne une carte Vision.",
		},
		{
			Name:        "Momie",
			HP:          11,
			Victory:     "Tous les personnages Hunter sont morts ou 3 personnages Neutres sont morts.",
			Ability:     "Capacité spéciale : Rayon d'Outremonde",
			AbilityDesc: "Au début de votre tour, vous pouvez infliger 3 Blessures à un joueur présent dans le Lieu Porte de l'Outremonde.",
		},
		{
			Name:        "Vampire",
			HP:          13,
			Victory:     "Tous les personnages Hunter sont morts ou 3 personnages Neutres sont morts.",
			Ability:     "Capacité spéciale : Morsure",
			AbilityDesc: "Si vous attaquez un joueur et lui infligez des Blessures, soignez immédiatement 2 de vos Blessures.",
		},
		{
			Name:        "Valkyrie",
			HP:          13,
			Victory:     "Tous les personnages Hunter sont morts ou 3 personnages Neutres sont morts.",
			Ability:     "Capacité spéciale : Chant de guerre",
			AbilityDesc: "Quand vous attaquez, lancez seulement le dé à 4 faces pour déterminer les dégats.",
		},
		{
			Name:        "Loup-Garou",
			HP:          14,
			Victory:     "Tous les personnages Hunter sont morts ou 3 personnages Neutres sont morts.",
			Ability:     "Capacité spéciale : Contre-attaque",
			AbilityDesc: "Après avoir subi l'attaque d'un joueur, vous pouvez contre-attaquer immédiatement.",
		},
		{
			Name:        "Liche",
			HP:          14,
			Victory:     "Tous les personnages Hunter sont morts ou 3 personnages Neutres sont morts.",
			Ability:     "Capacité spéciale : Nécromancie",
			AbilityDesc: "Vous pouvez rejouer autant de fois qu'il y a de personnages morts. Utilisation unique.",
		},
	},
	AlignNeutral: {
		{
			Name:        "Allie",
			HP:          8,
			Victory:     "Etre encore en vie lorsque la partie se termine.",
			Ability:     "Capacité spéciale : Amour maternel",
			AbilityDesc: "Soignez toutes vos blessures. Utilisation unique.",
		},
		{
			Name:        "Agnes",
			HP:          8,
			Victory:     "Le joueur à votre droite gagne.",
			Ability:     "Capacité spéciale : Caprice",
			AbilityDesc: "Au début de votre tour, changez votre condition de victoire par : \"Le joueur à votre gauche gagne\".",
		},
		{
			Name:        "Daniel",
			HP:          13,
			Victory:     "Etre le premier à mourir OU être en vie quand tous les personnages Shadow sont morts.",
			Ability:     "Particularité : Désespoir",
			AbilityDesc: "Dès qu'un personnage meurt, vous devez révéler votre identité.",
		},
		{
			Name:        "David",
			HP:          13,
			Victory:     "Avoir au minimum 3 de ces cartes : Crucifix en argent, Amulette, Lance de Longinus, Toge sainte.",
			Ability:     "Capacité spéciale : Pilleur de tombes",
			AbilityDesc: "Récupérez dans la défausse la carte équipement de votre choix. Utilisation unique.",
		},
		{
			Name:        "Charles",
			HP:          11,
			Victory:     "Tuer un personnage par une attaque alors qu'il y a déjà eu 3 morts ou plus.",
			Ability:     "Capacité spéciale : Festin sanglant",
			AbilityDesc: "Après votre attaque, vous pouvez vous infliger 2 Blessures afin d'attaquer de nouveau le même joueur.",
		},
		{
			Name:        "Catherine",
			HP:          11,
			Victory:     "Être la première à mourir OU être l'un des deux seuls personnages en vie.",
			Ability:     "Capacité spéciale : Stigmates",
			AbilityDesc: "Guerissez de 1 Blessure au début de votre tour.",
		},
		{
			Name:        "Bryan",
			HP:          10,
			Victory:     "Tuer un personnage de 13 Points de Vie ou plus, OU être dans le Sanctuaire ancien à la fin du jeu.",
			Ability:     "Particularité : Oh my god !",
			AbilityDesc: "Si vous tuez un personnage de 12 Points de Vie ou moins, vous devez révéler votre identité.",
		},
		{
			Name:        "Bob",
			HP:          10,
			Victory:     "Posséder 5 cartes équipements ou plus.",
			Ability:     "Capacité spéciale : Braquage",
			AbilityDesc: "Si vous tuez un personnage, vous pouvez récupérer toutes ses cartes équipements.",
		},
	},
	AlignHunter: {
		{
			Name:        "Emi",
			HP:          10,
			Victory:     "Tous les personnages Shadow sont morts.",
			Ability:     "Capacité spéciale : Téléportation",
			AbilityDesc: "Pour vous déplacer, vous pouvez lancer normalement les dés, ou vous déplacer sur la carte lieu adjacente.",
		},
		{
			Name:        "Ellen",
			HP:          10,
			Victory:     "Tous les personnages Shadow sont morts.",
			Ability:     "Capacité spéciale : Exorcisme",
			AbilityDesc: "Au début de votre tour, vous pouvez désigner un joueur. Il perd sa capacité spéciale jusqu'à la fin de la partie. Utilisation unique.",
		},
		{
			Name:        "Georges",
			HP:          14,
			Victory:     "Tous les personnages Shadow sont morts.",
			Ability:     "Capacité spéciale : Démolition",
			AbilityDesc: "Au début de votre tour, choisissez un joueur et infligez lui autant de blessures que le résultat d'un dé à 4 faces. Utilisation unique.",
		},
		{
			Name:        "Gregor",
			HP:          14,
			Victory:     "Tous les personnages Shadow sont morts.",
			Ability:     "Capacité spéciale : Bouclier fantôme",
			AbilityDesc: "Ce pouvoir peut s'activer à la fin de votre tour. Vous ne subissez aucune Blessure jusqu'au début de votre prochain tour. Utilisation unique.",
		},
		{
			Name:        "Franklin",
			HP:          12,
			Victory:     "Tous les personnages Shadow sont morts.",
			Ability:     "Capacité spéciale : Poudre",
			AbilityDesc: "Au début de votre tour, choisissez un joueur et infligez lui autant de blessures que le résultat d'un dé à 6 faces. Utilisation unique.",
		},
		{
			Name:        "Fu-Ka",
			HP:          12,
			Victory:     "Tous les personnages Shadow sont morts.",
			Ability:     "Capacité spéciale : Soins particuliers",
			AbilityDesc: "Au début de votre tour, placez le marqueur de Blessures d'un joueur sur 7. Utilisation unique.",
		},
	},
}

// removedArchetype is dropped from the Neutral roster in larger games;
// Bob's equipment win is considered too easy with more players at the table.
const (
	removedArchetype       = "Bob"
	removalPlayerThreshold = 7
)

// roleTable maps a seat count to how many characters are dealt from each
// roster, in Shadow/Neutral/Hunter order. Counts sum to the seat count.
var roleTable = map[int][3]int{
	4: {2, 0, 2},
	5: {2, 1, 2},
	6: {2, 2, 2},
	7: {3, 1, 3},
	8: {3, 2, 3},
}

func supportedPlayerCounts() string {
	counts := make([]int, 0, len(roleTable))
	for n := range roleTable {
		counts = append(counts, n)
	}
	sort.Ints(counts)

	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

// Area is one of the six printed location cards. Values are the dice
// totals that land a player there.
type Area struct {
	Values []int  `json:"values"`
	Name   string `json:"name"`
	Text   string `json:"text"`
}

var areaCards = []Area{
	{Values: []int{2, 3}, Name: "Antre de l'ermite", Text: "Vous pouvez piocher une carte Vision"},
	{Values: []int{4, 5}, Name: "Porte de l'Outremonde", Text: "Vous pouvez piocher une carte dans la pile de votre choix"},
	{Values: []int{6}, Name: "Monastère", Text: "Vous pouvez piocher une carte Lumière"},
	{Values: []int{8}, Name: "Cimetière", Text: "Vous pouvez piocher une carte Ténèbres"},
	{Values: []int{9}, Name: "Forêt hantée", Text: "Le joueur de votre choix peut subir 2 blessures OU soigner 1 blessure"},
	{Values: []int{10}, Name: "Sanctuaire ancien", Text: "Vous pouvez voler une carte équipement à un autre joueur"},
}

type CardType string

const (
	CardDark   CardType = "Black"
	CardVision CardType = "Vision"
	CardLight  CardType = "White"
)

// cardTypes fixes the deck order as laid out on the board.
var cardTypes = []CardType{CardDark, CardVision, CardLight}

// Card is one printed card. Equip marks cards that stay in front of the
// drawer as equipment; Claim is only set on vision cards ("Je pense que
// tu es ..."), with Text carrying the consequence.
type Card struct {
	Name  string `json:"name"`
	Equip bool   `json:"equip"`
	Claim string `json:"claim,omitempty"`
	Text  string `json:"text"`
}

var decks = map[CardType][]Card{
	CardDark: {
		{Name: "Chauve-souris vampire", Text: "Infligez 2 Blessures au joueur de votre choix, puis soignez une de vos Blessures."},
		{Name: "Chauve-souris vampire", Text: "Infligez 2 Blessures au joueur de votre choix, puis soignez une de vos Blessures."},
		{Name: "Chauve-souris vampire", Text: "Infligez 2 Blessures au joueur de votre choix, puis soignez une de vos Blessures."},
		{Name: "Succube tentatrice", Text: "Volez une carte équipement au joueur de votre choix."},
		{Name: "Succube tentatrice", Text: "Volez une carte équipement au joueur de votre choix."},
		{Name: "Araignée sanguinaire", Text: "Vous infligez 2 Blessures au personnage de votre choix, puis vous subissez vous-même 2 Blessures."},
		{Name: "Poupée démoniaque", Text: "Désignez un joueur et lancez le dé à 6 faces. 1 à 4 : infligez lui 3 Blessures. 5 ou 6 : subissez 3 Blessures."},
		{Name: "Dynamite", Text: "Lancez les 2 dés et infligez 3 Blessures à tous les joueurs (vous compris) se trouvant dans le secteur désigné par le total des 2 dés. Il ne se passe rien si ce total est 7."},
		{Name: "Rituel diabolique", Text: "Si vous êtes un Shadow, et si vous décidez de révéler (ou avez déjà révélé) votre identité, soignez toutes vos Blessures."},
		{Name: "Peau de banane", Text: "Donnez une de vos cartes équipements à un autre personnage. Si vous n'en possédez aucune, vous encaissez 1 Blessure."},
		{Name: "Tronçonneuse du mal", Equip: true, Text: "Si votre attaque inflige des Blessures, la victime subit 1 Blessure en plus."},
		{Name: "Hachoir maudit", Equip: true, Text: "Si votre attaque inflige des Blessures, la victime subit 1 Blessure en plus."},
		{Name: "Hache tueuse", Equip: true, Text: "Si votre attaque inflige des Blessures, la victime subit 1 Blessure en plus."},
		{Name: "Revolver des ténèbres", Equip: true, Text: "Vous pouvez attaquer un joueur présent sur l'un des 4 lieux hors de votre secteur, mais vous ne pouvez plus attaquer un joueur situé dans le même secteur que vous."},
		{Name: "Sabre hanté Masamuné", Equip: true, Text: "Vous êtes obligé d'attaquer durant votre tour. Lancez uniquement le dé à 4 faces, le résultat indique les Blessures que vous infligez."},
		{Name: "Mitrailleuse funeste", Equip: true, Text: "Votre attaque affecte tous les personnages qui sont à votre portée. Effectuez un seul jet de Blessures pour tous les joueurs concernés."},
	},
	CardVision: {
		{Name: "Vision cupide", Claim: "Je pense que tu es Neutre ou Shadow", Text: "Si c'est le cas, tu dois : soit me donner une carte équipement, soit subir une Blessure."},
		{Name: "Vision cupide", Claim: "Je pense que tu es Neutre ou Shadow", Text: "Si c'est le cas, tu dois : soit me donner une carte équipement, soit subir une Blessure."},
		{Name: "Vision enivrante", Claim: "Je pense que tu es Neutre ou Hunter", Text: "Si c'est le cas, tu dois : soit me donner une carte équipement, soit subir une Blessure."},
		{Name: "Vision enivrante", Claim: "Je pense que tu es Neutre ou Hunter", Text: "Si c'est le cas, tu dois : soit me donner une carte équipement, soit subir une Blessure."},
		{Name: "Vision furtive", Claim: "Je pense que tu es Hunter ou Shadow", Text: "Si c'est le cas, tu dois : soit me donner une carte équipement, soit subir une Blessure."},
		{Name: "Vision furtive", Claim: "Je pense que tu es Hunter ou Shadow", Text: "Si c'est le cas, tu dois : soit me donner une carte équipement, soit subir une Blessure."},
		{Name: "Vision mortifère", Claim: "Je pense que tu es Hunter", Text: "Si c'est le cas, subis 1 Blessure !"},
		{Name: "Vision mortifère", Claim: "Je pense que tu es Hunter", Text: "Si c'est le cas, subis 1 Blessure !"},
		{Name: "Vision destructrice", Claim: "Je pense que tu es un personnage de 12 Points de vie ou plus", Text: "Si c'est le cas, subis 2 Blessures !"},
		{Name: "Vision clairvoyante", Claim: "Je pense que tu es un personnage de 11 Points de vie ou moins", Text: "Si c'est le cas, subis 1 Blessure !"},
		{Name: "Vision divine", Claim: "Je pense que tu es Hunter", Text: "Si c'est le cas, soigne 1 Blessure. (Toutefois, si tu n'avais aucune blessure, subis 1 Blessure !)"},
		{Name: "Vision réconfortante", Claim: "Je pense que tu es Neutre", Text: "Si c'est le cas, soigne 1 Blessure. (Toutefois, si tu n'avais aucune blessure, subis 1 Blessure !)"},
		{Name: "Vision lugubre", Claim: "Je pense que tu es Shadow", Text: "Si c'est le cas, soigne 1 Blessure. (Toutefois, si tu n'avais aucune blessure, subis 1 Blessure !)"},
		{Name: "Vision foudroyante", Claim: "Je pense que tu es Shadow", Text: "Si c'est le cas, subis 1 Blessure !"},
		{Name: "Vision purificatrice", Claim: "Je pense que tu es Shadow", Text: "Si c'est le cas, subis 2 Blessures !"},
		{Name: "Vision suprême", Text: "Montre moi secrètement ta carte Personnage !"},
	},
	CardLight: {
		{Name: "Éclair purificateur", Text: "Chaque personnage, à l'exception de vous même, subit 2 Blessures."},
		{Name: "Eau bénite", Text: "Vous êtes soigné de 2 Blessures."},
		{Name: "Eau bénite", Text: "Vous êtes soigné de 2 Blessures."},
		{Name: "Savoir ancestral", Text: "Lorsque votre tour est terminé, jouez immédiatement un nouveau tour."},
		{Name: "Avènement suprême", Text: "Si vous êtes un Hunter, vous pouvez révéler votre identité. Si vous le faites, ou si vous êtes déjà révélé, vous soignez toutes vos Blessures."},
		{Name: "Miroir divin", Text: "Si vous êtes un Shadow, autre que Métamorphe, vous devez révéler votre identité."},
		{Name: "Premiers secours", Text: "Placez le marqueur de Blessures du joueur de votre choix (y compris vous) sur le 7."},
		{Name: "Ange gardien", Text: "Les attaques ne vous infligent aucune Blessure jusqu'à la fin de votre prochain tour."},
		{Name: "Barre de chocolat", Text: "Si vous êtes Allie, Agnes, Emi, Ellen, Momie ou Métamorphe, et que vous choisissez de révéler (ou avez déjà révélé) votre identité, vous soignez toutes vos Blessures."},
		{Name: "Bénédiction", Text: "Choisissez un joueur autre que vous même et lancez le dé à 6 faces. Ce joueur guérit d'autant de Blessures que le résultat du dé."},
		{Name: "Crucifix en argent", Equip: true, Text: "Si vous attaquez et tuez un autre personnage, vous récupérez toutes ses cartes équipements."},
		{Name: "Toge sainte", Equip: true, Text: "Vos attaques infligent 1 Blessure en moins, et les Blessures que vous subissez sont réduites de 1."},
		{Name: "Lance de Longinus", Equip: true, Text: "Si vous êtes un Hunter, et que votre identité est révélée, chaque fois qu'une de vos attaques inflige des Blessures, vous infligez 2 Blessures supplémentaires."},
		{Name: "Amulette", Equip: true, Text: "Vous ne subissez aucune Blessure causée par les cartes Ténèbres : Araignée sanguinaire, Dynamite ou Chauve-souris vampire."},
		{Name: "Broche de chance", Equip: true, Text: "Un joueur dans la Forêt hantée ne peut pas utiliser le pouvoir du Lieu pour vous infliger des Blessures (mais il peut toujours vous guérir)."},
		{Name: "Boussole mystique", Equip: true, Text: "Quand vous vous déplacez, vous pouvez lancer 2 fois les dés, et choisir quel résultat utiliser."},
	},
}

// seatPalette gives each seat its token and card-border color.
var seatPalette = []struct {
	Name  string
	Color string
}{
	{"Red", "#FF0000"},
	{"Green", "#00FF00"},
	{"Blue", "#0000FF"},
	{"White", "#FFFFFF"},
	{"Orange", "#FA9632"},
	{"Yellow", "#FFFF00"},
	{"Purple", "#6400C8"},
	{"Black", "#141414"},
}

const (
	smallDiceFaces = 4
	largeDiceFaces = 6
)
