// Package manual answers service and maintenance questions from an
// owner's-manual passage index.
//
// The Retriever embeds the question, pulls the most similar passages from
// the local index, and asks the chat model to answer from those passages
// only. It never returns an error to the caller; lookup or generation
// failures surface as an apology string so the conversation keeps going.
package manual
