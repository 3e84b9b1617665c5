package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/visionlab-dev/vision-report/pkg/config"
	"github.com/visionlab-dev/vision-report/pkg/core"
	"github.com/visionlab-dev/vision-report/pkg/report"
)

var demoCommand = &cli.Command{
	Name:  "demo",
	Usage: "Generate a showcase report exercising every feature",
	Description: `Generate a self-contained demo report covering status aggregation,
categories and authors, media attachments, error capture and
skipped tests.

Examples:
  vision-report demo
  vision-report demo --out ./reports
  vision-report demo --out demo-report.html`,
	Action: runDemo,
}

func runDemo(c *cli.Context) error {
	r := report.New()
	r.Config().
		SetTitle("Vision Report Demo - Feature Showcase").
		SetProjectName("Vision Report Library").
		SetApplicationName("E-Commerce Test Suite").
		SetEnvironment("Production").
		SetTesterName("QA Automation Team").
		SetBrowser("Chrome 120.0").
		AddCustomInfo("Build Number", "1.0.0").
		AddCustomInfo("Test Type", "Regression & Smoke")

	out := c.String("out")
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg.Apply(r)
		if out == "" {
			out = cfg.Output
		}
	}
	if title := c.String("title"); title != "" {
		r.Config().SetTitle(title)
	}

	populateDemo(r)

	if out == "" {
		out = report.DefaultOutputDir
	}
	if err := r.FlushTo(out); err != nil {
		return err
	}

	printOutcome(r)
	return nil
}

// populateDemo records a fixed suite of test cases chosen so the generated
// report shows one of everything: pure passes, a failure, a skip, media in
// each form, and a captured error with stack trace.
func populateDemo(r *report.Report) {
	r.CreateTest("User Login - Successful Authentication").
		Description("Validates that users can successfully log in with valid credentials").
		AssignAuthor("QA Automation Team").
		AssignCategory("Smoke", "Authentication", "Critical Path").
		Log(core.StatusInfo, "Navigate to login page", "Opening https://example.com/login").
		Log(core.StatusPass, "Enter username", "Username: testuser@example.com").
		Log(core.StatusPass, "Enter password", "Password field populated successfully").
		Log(core.StatusPass, "Click login button", "Login button clicked").
		Log(core.StatusPass, "Verify dashboard loaded", "User redirected to dashboard successfully")

	mediaTest := r.CreateTest("Media Provider Edge Cases").
		AssignCategory("Media Handling")
	if m, err := report.MediaFromPath("sample-image.png"); err == nil {
		mediaTest.LogWithMedia(core.StatusPass, "Valid Path", "Sample image", m)
	}
	mediaTest.LogWithMedia(core.StatusInfo, "Nil Media", "No attachment", nil)
	if m, err := report.MediaFromBase64(demoBase64Pixel + strings.Repeat("A", 5000)); err == nil {
		mediaTest.LogWithMedia(core.StatusPass, "Large Base64", "Simulated large image", m)
	}
	if m, err := report.MediaFromURL("https://www.google.com/images/branding/googlelogo/2x/googlelogo_light_color_272x92dp.png"); err == nil {
		mediaTest.LogWithMedia(core.StatusPass, "Image URL", "Loaded from URL", m)
	}

	r.CreateTest("Add Items to Shopping Cart").
		Description("Validates adding multiple items to cart and calculating totals").
		AssignCategory("E2E", "Shopping Cart", "Core Features").
		Log(core.StatusInfo, "Navigate to products page", "Opening product catalog").
		Log(core.StatusPass, "Select Product 1", "Added 'Wireless Mouse' to cart - $29.99").
		Log(core.StatusPass, "Select Product 2", "Added 'USB-C Cable' to cart - $12.99").
		Log(core.StatusPass, "View cart", "Cart displays 2 items").
		Log(core.StatusPass, "Verify cart total", "Total: $42.98 (correct calculation)")

	r.CreateTest("Checkout and Payment - Credit Card").
		Description("End-to-end checkout flow with credit card payment").
		AssignCategory("E2E", "Payment", "Critical Path").
		Log(core.StatusInfo, "Proceed to checkout", "Navigating to checkout page").
		Log(core.StatusPass, "Enter shipping address", "Address: 123 Main St, City, State 12345").
		Log(core.StatusPass, "Select shipping method", "Standard Shipping - 5-7 business days").
		Log(core.StatusPass, "Enter payment details", "Credit Card ending in **** 4242").
		Log(core.StatusPass, "Submit order", "Order #12345 placed successfully")

	r.CreateTest("Product Search with Filters").
		Description("Tests search functionality with multiple filters applied").
		AssignCategory("Search", "Filters", "Core Features").
		Log(core.StatusInfo, "Navigate to search page", "Opening product search").
		Log(core.StatusPass, "Enter search query", "Searching for 'wireless headphones'").
		Log(core.StatusPass, "Apply price filter", "Filter: $50 - $150").
		Log(core.StatusPass, "Verify results", "Found 12 products matching criteria")

	r.CreateTest("Login - Invalid Credentials").
		Description("Validates error handling for invalid login attempts").
		AssignCategory("Negative Testing", "Authentication", "Security").
		Log(core.StatusInfo, "Navigate to login page", "Opening login page").
		Log(core.StatusPass, "Enter invalid username", "Username: invalid@example.com").
		Log(core.StatusPass, "Click login button", "Attempting login").
		Log(core.StatusFail, "Verify error message", "Expected: 'Invalid credentials' but got: 'Server Error'").
		Log(core.StatusInfo, "Screenshot captured", "Error state documented")

	r.CreateTest("Mobile App Payment - Skipped").
		Description("Mobile payment test skipped due to device unavailability").
		AssignCategory("Mobile", "Payment", "iOS").
		Log(core.StatusInfo, "Check device availability", "Looking for iOS device").
		Log(core.StatusSkip, "Device not found", "No iOS devices available in test lab").
		Log(core.StatusInfo, "Test deferred", "Will retry when device becomes available")

	r.CreateTest("REST API - Get User Details").
		Description("Validates GET /api/users/{id} endpoint").
		AssignCategory("API", "Integration", "Backend").
		Log(core.StatusInfo, "Send GET request", "GET https://api.example.com/users/123").
		Log(core.StatusPass, "Verify status code", "Status: 200 OK").
		Log(core.StatusPass, "Verify response time", "Response time: 245ms (< 300ms threshold)").
		Log(core.StatusPass, "Validate response schema", "JSON schema validation passed")

	r.CreateTest("Error Capture - Division By Zero").
		Description("Tests graceful capture of runtime errors").
		AssignCategory("Error Handling", "Negative Testing", "Edge Cases").
		Log(core.StatusInfo, "Initialize test data", "Setting up test scenario").
		Log(core.StatusPass, "Attempt guarded operation", "Calling helper with bad input").
		LogError(errors.New("divide: denominator must be non-zero"))

	r.CreateTest("Page Load Performance").
		Description("Measures and validates page load times").
		AssignCategory("Performance", "Non-Functional", "Monitoring").
		Log(core.StatusInfo, "Start performance monitoring", "Initiating page load test").
		Log(core.StatusPass, "Measure time to first byte", "TTFB: 120ms").
		Log(core.StatusPass, "Measure full page load", "Load: 1.2s").
		Log(core.StatusPass, "Performance threshold met", "All metrics within acceptable range")

	r.CreateTest("Complete User Journey - Registration to Purchase").
		Description("End-to-end user journey from registration through first purchase").
		AssignCategory("E2E", "User Journey", "Critical Path", "Regression").
		Log(core.StatusInfo, "Start user journey", "Beginning complete workflow test").
		Log(core.StatusPass, "Step 1: User registration", "New user account created successfully").
		Log(core.StatusPass, "Step 2: Email verification", "Verification email received and confirmed").
		Log(core.StatusPass, "Step 3: Add to cart", "3 items added to shopping cart").
		Log(core.StatusPass, "Step 4: Complete purchase", "Order placed and confirmation displayed").
		Log(core.StatusInfo, "User journey completed", "Total time: 3m 42s")

	r.CreateTest("Form Validation - Registration Form").
		Description("Validates all form field validations on registration page").
		AssignCategory("Validation", "Forms", "Frontend").
		Log(core.StatusInfo, "Open registration form", "Navigate to /register").
		Log(core.StatusPass, "Validate email format", "Rejects invalid email formats").
		Log(core.StatusPass, "Validate password strength", "Enforces minimum 8 characters, 1 number, 1 special char").
		Log(core.StatusPass, "Validate required fields", "Form submission blocked with empty required fields")
}

// demoBase64Pixel is a 1x1 transparent PNG, the seed of the "large base64"
// demo attachment.
const demoBase64Pixel = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8A"

func printOutcome(r *report.Report) {
	var pass, fail, skip int
	for _, t := range r.Tests() {
		statuses := make([]core.Status, 0, len(t.Logs()))
		for _, l := range t.Logs() {
			statuses = append(statuses, l.Status())
		}
		switch core.Derive(statuses) {
		case core.StatusPass:
			pass++
		case core.StatusFail:
			fail++
		case core.StatusSkip:
			skip++
		}
	}

	fmt.Printf("%s  %s  %s  (%d tests)\n",
		color.GreenString("%d passed", pass),
		color.RedString("%d failed", fail),
		color.YellowString("%d skipped", skip),
		len(r.Tests()))
}
