package handler

// APIPrefix is the canonical base path for the public HTTP API.
// Single source of truth to avoid path drift across handlers and tests.
const APIPrefix = "/api"
