package report

// reportSchema is the JSON Schema a saved parse report must satisfy before
// the compare command will consume it. Loose by design: historical reports
// predate the id field and omit optimized_text.
const reportSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "ATS Parse Report",
  "type": "object",
  "required": ["contact_info", "work_experience", "education", "skills", "ats_issues", "optimization_score"],
  "properties": {
    "id": {"type": "string"},
    "contact_info": {
      "type": "object",
      "required": ["name", "email", "phone", "location", "linkedin", "complete"],
      "properties": {
        "name": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "location": {"type": "string"},
        "linkedin": {"type": "string"},
        "complete": {"type": "boolean"}
      }
    },
    "work_experience": {
      "type": "object",
      "required": ["jobs", "parsed_well"],
      "properties": {
        "jobs": {
          "type": ["array", "null"],
          "items": {
            "type": "object",
            "required": ["title", "company", "dates"],
            "properties": {
              "title": {"type": "string"},
              "company": {"type": "string"},
              "dates": {"type": "string"},
              "achievements": {"type": ["array", "null"], "items": {"type": "string"}}
            }
          }
        },
        "parsed_well": {"type": "boolean"},
        "issues": {"type": ["array", "null"], "items": {"type": "string"}}
      }
    },
    "education": {
      "type": "object",
      "required": ["institutions", "parsed_well"],
      "properties": {
        "institutions": {
          "type": ["array", "null"],
          "items": {
            "type": "object",
            "required": ["degree", "institution", "dates"],
            "properties": {
              "degree": {"type": "string"},
              "institution": {"type": "string"},
              "location": {"type": "string"},
              "dates": {"type": "string"}
            }
          }
        },
        "parsed_well": {"type": "boolean"},
        "issues": {"type": ["array", "null"], "items": {"type": "string"}}
      }
    },
    "skills": {
      "type": "object",
      "required": ["skill_categories", "parsed_well"],
      "properties": {
        "skill_categories": {
          "type": ["array", "null"],
          "items": {
            "type": "object",
            "required": ["name"],
            "properties": {
              "name": {"type": "string"},
              "skills": {"type": ["array", "null"], "items": {"type": "string"}}
            }
          }
        },
        "parsed_well": {"type": "boolean"},
        "issues": {"type": ["array", "null"], "items": {"type": "string"}}
      }
    },
    "ats_issues": {"type": ["array", "null"], "items": {"type": "string"}},
    "optimization_score": {"type": "integer", "minimum": 0, "maximum": 100},
    "optimized_text": {"type": "string"},
    "error": {"type": "string"}
  }
}`
