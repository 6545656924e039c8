package repository

var NewRateLimitRepoAt = newRateLimitRepoAt
