package repocache

var CommitMatches = commitMatches
