// Package taegis provides types and a GraphQL client for the parts of the
// Taegis API these tools consume: the tenant-scoped event query service
// (with continuation-page pagination) and the Roadrunner parser validation
// endpoint.
//
// Event rows arrive from the API as loosely-typed JSON objects. They are
// decoded exactly once, at this boundary, into the Event record type; the
// rest of the codebase never touches raw maps.
package taegis
