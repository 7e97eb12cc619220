// meta/meta.go
package meta

// NUM_TERRITORIES defines the fixed size of the territory registry.
const NUM_TERRITORIES = 5

// NUM_MISSIONS defines how many missions can be drawn.
const NUM_MISSIONS = 3

// MAX_NAME_LENGTH bounds territory names and army colors.
const MAX_NAME_LENGTH = 49

// ELIMINATION_COLOR is the army color targeted by the elimination mission.
const ELIMINATION_COLOR = "vermelho"
