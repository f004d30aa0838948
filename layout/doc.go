// Package layout provides the stock placement strategies for tui containers.
//
// Every layout is stateless: it reads the components and hints it is given,
// assigns positions and sizes, and keeps nothing between calls, so a single
// value can be shared by any number of containers. Each layout defines its
// own hint type and treats any other hint, including nil, as its default.
//
//   - [Grid] divides the container into equal cells, row-major.
//   - [Compass] docks components to the edges around a centre.
//   - [Aligned] positions each component within the whole container.
//   - [Strip] stacks components along one axis.
//   - [Padded] insets every component by a fixed margin.
package layout
