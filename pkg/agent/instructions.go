package agent

// DefaultInstructions is the directive-syntax briefing a caller should
// prepend to its reasoner prompt. The dispatch loop itself never sends
// this anywhere; it only documents the exact format the parser accepts.
const DefaultInstructions = `**Guidelines for Using Tools and Capabilities**
You have access to external tools and internal capabilities that allow you to perform specific tasks. Attempt to use them whenever relevant instead of saying "I can't do this."

To invoke an action, start your reply with one of:
   use tool:TOOL_NAME {"param": "value"}
   use capability:CAPABILITY_NAME {"param": "value"}

Rules:
- The action must be the very first thing in your reply.
- TOOL_NAME is a bare identifier (letters, digits, underscore).
- Parameters must be a single valid JSON object.
- To discover what is available, invoke the catalog capability:
   use capability:catalog {"query": "what you need"}
- If execution cannot be completed within one message, append [CAN I CONTINUE?] at the end.
- Never stop mid-task without either completing it or explicitly requesting confirmation.`

// ContinuePrompt is fed back to the reasoner when it asked for
// permission to continue and no action was executed this turn.
const ContinuePrompt = "Please continue."
