// Package domain contains the plain value types exchanged between the
// calculator core, its glue and the presentation layers. They carry no
// behavior and no infrastructure concerns.
package domain
