// Package server serves nutrition agents over JSON-RPC.
//
// A [Handler] validates the request envelope, resolves the target agent,
// hands the agent a fetch capability bound to the nutrition lookup and
// wraps the outcome in a completed task or an error envelope:
//
//	agents := agent.NewRegistry()
//	agents.MustRegister("nutrition-agent", agent.Passthrough())
//
//	h := server.NewHandler(agents, nutrition.NewClient(apiKey))
//	http.ListenAndServe(":8000", server.NewRouter(h))
package server
