package openai

const extractionSystemPrompt = `Extract the vehicle information from the user's question and return it as JSON.

Output ONLY valid JSON. Do not include any preamble, explanation, greeting,
or acknowledgment. Start your response directly with the opening brace { and
end with the closing brace }. Your output must exactly follow this schema:

{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "year": {"type": "integer"},
    "make": {"type": "string"},
    "model": {"type": "string"}
  },
  "required": ["year", "make", "model"],
  "additionalProperties": false
}

Rules:
- "make" is the manufacturer brand, e.g. "BMW", "Toyota", "Hyundai".
- "model" is the specific model name, e.g. "3 Series", "Camry", "Creta".
- "year" is the four-digit manufacturing year, e.g. 2024.
- If a field is not mentioned in the question, use 0 for year and "" for
  make or model. Do not guess.
- The JSON must parse without errors; no trailing commas, no extra keys,
  and no extraneous text outside the object.

Example:
Input: "2024 Hyundai Creta recalls"
Output:
{"year":2024,"make":"Hyundai","model":"Creta"}

Example (no model mentioned):
Input: "any recalls for my 2023 BMW?"
Output:
{"year":2023,"make":"BMW","model":""}

Example (nothing extractable):
Input: "does my car have recalls"
Output:
{"year":0,"make":"","model":""}`
