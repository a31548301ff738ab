// meta/meta.go
package meta

// EPSILON defines the default probability of a random (exploratory) move.
const EPSILON = 0.1

// ALPHA defines the default learning rate of the TD update.
const ALPHA = 0.5

// GAMES defines the default number of self-play training games.
const GAMES = 10000

// LOG_EVERY defines how many training games pass between progress logs.
const LOG_EVERY = 1000

// WINDOW defines the number of games averaged per point of the learning curve.
const WINDOW = 250

// MAX_ATTEMPTS bounds invalid human inputs before giving up, 0 for no bound.
const MAX_ATTEMPTS = 0
