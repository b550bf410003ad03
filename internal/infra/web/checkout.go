package web

import (
	"html/template"
	"net/http"
)

// checkoutPage is the shell the Pay button lands on: it hands the browser
// straight to the provider's hosted page for the session just created.
var checkoutPage = template.Must(template.New("checkout").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width,initial-scale=1" />
<title>Complete your donation</title>
<style>
body{font-family:system-ui,Arial,sans-serif;margin:2rem;}
.card{max-width:560px;border:1px solid #ddd;border-radius:12px;padding:24px;}
.small{font-size:12px;color:#666}
</style>
<script src="https://js.stripe.com/v3/"></script>
</head>
<body>
<div class="card">
  <h2>Redirecting to secure checkout…</h2>
  <p>If nothing happens, click the button below.</p>
  <button id="pay">Continue to payment</button>
  <div class="small">Payments are handled by Stripe; card details never touch this server.</div>
</div>
<script>
var stripe = Stripe({{.PublishableKey}});
function go() { stripe.redirectToCheckout({ sessionId: {{.SessionID}} }); }
document.getElementById("pay").addEventListener("click", go);
go();
</script>
</body>
</html>`))

var errorPage = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width,initial-scale=1" />
<title>Donation</title>
<style>
body{font-family:system-ui,Arial,sans-serif;margin:2rem;}
.card{max-width:560px;border:1px solid #ddd;border-radius:12px;padding:24px;}
.fail{color:#b00020}
</style>
</head>
<body>
<div class="card">
  <h2 class="fail">Something went wrong</h2>
  <p>{{.Msg}}</p>
</div>
</body>
</html>`))

func (s *Server) renderCheckout(w http.ResponseWriter, sessionID string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = checkoutPage.Execute(w, struct {
		PublishableKey string
		SessionID      string
	}{
		PublishableKey: s.publishableKey,
		SessionID:      sessionID,
	})
}

func (s *Server) renderError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_ = errorPage.Execute(w, struct{ Msg string }{Msg: msg})
}
