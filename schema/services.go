package schema

// ServiceCost holds the monthly cost estimate for a third-party service.
// Costs represent typical free-tier or starter-plan pricing; zero-cost
// services are reported but never contribute to the burn estimate.
type ServiceCost struct {
	Cost     int
	Label    string
	Category string
}

// ServiceCosts maps service keys to their monthly cost estimates. Kept as
// data so pricing updates never touch classification logic.
var ServiceCosts = map[string]ServiceCost{
	// Backend / Database
	"supabase":    {Cost: 25, Label: "Supabase", Category: "BaaS"},
	"firebase":    {Cost: 25, Label: "Firebase", Category: "BaaS"},
	"planetscale": {Cost: 29, Label: "PlanetScale", Category: "Database"},
	"neon":        {Cost: 19, Label: "Neon Postgres", Category: "Database"},
	"upstash":     {Cost: 5, Label: "Upstash Redis", Category: "Cache"},
	"redis":       {Cost: 5, Label: "Redis Cloud", Category: "Cache"},

	// Hosting / Edge
	"vercel":     {Cost: 20, Label: "Vercel", Category: "Hosting"},
	"netlify":    {Cost: 19, Label: "Netlify", Category: "Hosting"},
	"cloudflare": {Cost: 5, Label: "Cloudflare", Category: "CDN"},

	// Media / Video
	"mux":        {Cost: 20, Label: "Mux Video", Category: "Media"},
	"cloudinary": {Cost: 10, Label: "Cloudinary", Category: "Media"},
	"imgix":      {Cost: 10, Label: "imgix", Category: "Media"},

	// Payments / Commerce
	"stripe": {Cost: 0, Label: "Stripe", Category: "Payments"},

	// Auth
	"auth0": {Cost: 0, Label: "Auth0", Category: "Auth"},
	"clerk": {Cost: 25, Label: "Clerk", Category: "Auth"},

	// AI / ML
	"openai":      {Cost: 20, Label: "OpenAI API", Category: "AI"},
	"anthropic":   {Cost: 20, Label: "Anthropic API", Category: "AI"},
	"gemini":      {Cost: 0, Label: "Gemini API", Category: "AI"},
	"replicate":   {Cost: 10, Label: "Replicate", Category: "AI"},
	"huggingface": {Cost: 10, Label: "Hugging Face", Category: "AI"},

	// Monitoring / Observability
	"sentry":  {Cost: 0, Label: "Sentry", Category: "Observability"},
	"datadog": {Cost: 15, Label: "Datadog", Category: "Observability"},

	// CI / CD
	"circleci": {Cost: 15, Label: "CircleCI", Category: "CI/CD"},

	// Email / Notifications
	"sendgrid": {Cost: 0, Label: "SendGrid", Category: "Email"},
	"resend":   {Cost: 0, Label: "Resend", Category: "Email"},
	"twilio":   {Cost: 10, Label: "Twilio", Category: "Communications"},

	// Music / Audio
	"suno": {Cost: 10, Label: "Suno API", Category: "Audio"},
}

// ServicePatterns maps service keys to case-insensitive substring
// fingerprints. A service is detected when any pattern appears in the corpus.
var ServicePatterns = map[string][]string{
	"supabase":    {"@supabase/", "supabase-py", "supabase-js", "supabase.co"},
	"firebase":    {"firebase-admin", "@firebase/", "firebaseConfig", "google-cloud-firestore"},
	"planetscale": {"@planetscale/", "planetscale"},
	"neon":        {"@neondatabase/", "neon.tech"},
	"upstash":     {"@upstash/", "upstash-redis"},
	"redis":       {"redis", "ioredis", "aioredis", "redis-py"},
	"vercel":      {"@vercel/", "vercel.json", "VERCEL_", "vercel.app"},
	"netlify":     {"netlify.toml", "netlify-cli", "NETLIFY_"},
	"cloudflare":  {"cloudflare", "wrangler", "CLOUDFLARE_"},
	"mux":         {"@mux/", "mux-python", "mux.com", "MUX_TOKEN"},
	"cloudinary":  {"cloudinary", "CLOUDINARY_"},
	"imgix":       {"imgix"},
	"stripe":      {"stripe", "@stripe/", "STRIPE_"},
	"auth0":       {"@auth0/", "auth0-python", "AUTH0_"},
	"clerk":       {"@clerk/", "CLERK_"},
	"openai":      {"openai", "OPENAI_API_KEY"},
	"anthropic":   {"anthropic", "ANTHROPIC_API_KEY"},
	"gemini":      {"gemini", "GEMINI_API_KEY", "google-generativeai", "@google/generative-ai"},
	"replicate":   {"replicate", "REPLICATE_"},
	"huggingface": {"huggingface", "transformers", "huggingface_hub"},
	"sentry":      {"@sentry/", "sentry-sdk", "SENTRY_DSN"},
	"datadog":     {"datadog", "ddtrace"},
	"circleci":    {".circleci"},
	"sendgrid":    {"sendgrid", "@sendgrid/", "SENDGRID_"},
	"resend":      {"resend"},
	"twilio":      {"twilio", "TWILIO_"},
	"suno":        {"suno"},
}

// ServiceScanFiles is the fixed list of candidate files whose contents form
// the service-detection corpus. Any of them may be absent.
var ServiceScanFiles = []string{
	"package.json",
	"requirements.txt",
	"pyproject.toml",
	"Pipfile",
	"docker-compose.yml",
	"docker-compose.yaml",
	"Dockerfile",
	".env.example",
	".env.sample",
	"vercel.json",
	"netlify.toml",
	"wrangler.toml",
}

// TerraformDir is also scanned for *.tf manifests.
const TerraformDir = "terraform"

// OrgName is the organization the fleet belongs to.
const OrgName = "BlueFalconInk LLC"

// DefaultCoreRepos is the default allowlist of repos core to operations.
// Overridable via the core-repos config key.
var DefaultCoreRepos = []string{
	"ArchitectAIPro", "ArchitectAIPro_GHActions", "clipstream",
	"ProposalBuddyAI", "polymath-hub", "BlueFalconInkLanding",
	"videogamedev", "Afterword", "BlueFalconInk",
}

// BrandIncorrect lists legacy brand strings that must be replaced.
var BrandIncorrect = []string{
	"Blue Falcon RC & Media", "Blue Falcon RC and Media",
	"BlueFalcon RC & Media", "bluefalcon rc",
	"@BlueFalconRCandMedia",
}

// BrandCorrect lists accepted brand strings.
var BrandCorrect = []string{"BlueFalconInk LLC", "BlueFalconInk", "bluefalconink"}

// BrandingFiles is the fixed set of files checked for branding compliance.
var BrandingFiles = []string{
	"README.md", "package.json", "pyproject.toml", "LICENSE",
	"ARCHITECT_CONFIG.json",
}

// ArchitectureFiles is the fixed set of documentation paths expected in a
// fully configured repo.
var ArchitectureFiles = []string{
	"docs/architecture.md",
	"docs/architecture.mermaid",
	"docs/architecture.png",
	"docs/architecture.drawio",
	"ARCHITECT_CONFIG.json",
}

// ArchitectureWorkflowKeyword marks the workflow that regenerates diagrams.
const ArchitectureWorkflowKeyword = "architecture"

// Secret-name fingerprints for the secrets health check.
const (
	AIProviderSecret = "GEMINI_API_KEY"
)

// CloudSecretHints are substrings that identify cloud-credential secrets.
var CloudSecretHints = []string{"GCP", "GOOGLE"}
