package templates

import "github.com/a-h/templ"

// Tab identifies the active navigation entry.
type Tab string

const (
	TabPricing  Tab = "pricing"
	TabOrders   Tab = "orders"
	TabReplies  Tab = "replies"
	TabSettings Tab = "settings"
)

var tabs = []struct {
	tab   Tab
	href  templ.SafeURL
	label string
}{
	{TabPricing, "/pricing", "Pricing"},
	{TabOrders, "/orders", "Orders"},
	{TabReplies, "/replies", "Replies"},
	{TabSettings, "/settings", "Settings"},
}

const pageStyle = `body{font-family:-apple-system,Helvetica,Arial,sans-serif;margin:0;background:#f4f4f5;color:#18181b}` +
	`main{max-width:720px;margin:0 auto;padding:16px 16px 88px}` +
	`nav.tabs{position:fixed;bottom:0;left:0;right:0;display:flex;background:#fff;border-top:1px solid #e4e4e7}` +
	`nav.tabs a{flex:1;text-align:center;padding:14px 0;color:#52525b;text-decoration:none}nav.tabs a.active{color:#7c3aed;font-weight:600}` +
	`.card{background:#fff;border-radius:12px;padding:16px;margin-bottom:16px;box-shadow:0 1px 3px rgba(0,0,0,.08)}` +
	`.field{display:block;margin-bottom:10px}.field span{display:block;font-size:13px;color:#52525b;margin-bottom:4px}` +
	`.field input,.field textarea{width:100%;box-sizing:border-box;padding:8px;border:1px solid #d4d4d8;border-radius:8px;font-size:15px}` +
	`.grid{display:grid;grid-template-columns:1fr 1fr;gap:0 12px}.error{color:#dc2626}` +
	`table{width:100%;border-collapse:collapse}td{padding:6px 0;border-bottom:1px solid #f4f4f5}td.value{text-align:right}` +
	`tr.total td{font-weight:700;border-bottom:none}button,.button{background:#7c3aed;color:#fff;border:0;border-radius:8px;padding:9px 14px;font-size:14px;cursor:pointer;text-decoration:none;display:inline-block}` +
	`button.secondary,.button.secondary{background:#e4e4e7;color:#18181b}.actions{display:flex;gap:8px;flex-wrap:wrap;margin-top:12px}` +
	`.badge{font-size:12px;padding:2px 8px;border-radius:999px;background:#ede9fe;color:#5b21b6}.muted{color:#71717a;font-size:13px}` +
	`#toast{position:fixed;top:16px;left:50%;transform:translateX(-50%);padding:10px 16px;border-radius:8px;color:#fff;display:none;z-index:10}`

// toastScript shows HX-Trigger toasts and flash cookies, and hands text
// returned by share endpoints to the Web Share API or the clipboard.
const toastScript = `
function showToast(msg, type) {
  var t = document.getElementById('toast');
  t.textContent = msg;
  t.style.background = {success:'#16a34a', error:'#dc2626', warning:'#d97706', info:'#2563eb'}[type] || '#2563eb';
  t.style.display = 'block';
  clearTimeout(t._timer);
  t._timer = setTimeout(function(){ t.style.display = 'none'; }, 4000);
}
document.body.addEventListener('showToast', function(e){ showToast(e.detail.message, e.detail.type); });
(function(){
  var m = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (!m) return;
  document.cookie = 'flash_toast=; Max-Age=0; path=/';
  try { var d = JSON.parse(decodeURIComponent(m[1])); showToast(d.message, d.type); } catch (e) {}
})();
document.body.addEventListener('htmx:afterRequest', function(e){
  var el = e.detail.elt;
  if (!el.hasAttribute('data-share') || !e.detail.successful) return;
  var text = e.detail.xhr.responseText;
  if (navigator.share) {
    navigator.share({text: text}).catch(function(err){ if (err.name !== 'AbortError') showToast('Could not share: ' + err, 'error'); });
  } else if (navigator.clipboard) {
    navigator.clipboard.writeText(text).then(function(){ showToast('Copied to clipboard', 'success'); }, function(err){ showToast('Could not share: ' + err, 'error'); });
  } else {
    showToast('Could not share: sharing is not available', 'error');
  }
});
`
