package searcher

import "checkers/meta"

// Search parameters

const MaxDepth = meta.MaxDepth // Plies below a root successor before the static evaluation is used

const LossScore = -1000.0 // Value of having no legal move, from the loser's perspective
