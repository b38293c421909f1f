// Package awards answers award cross-reference questions for catalog titles:
// whether a title appears in the award dataset and with which outcomes.
package awards
