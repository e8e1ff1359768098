package ui

// GetScripts returns the JavaScript for the console. Everything works
// without it; it only saves a page reload when folding a sidebar.
func GetScripts() string {
	return `
        document.addEventListener('DOMContentLoaded', function() {
            document.querySelectorAll('form.fold-toggle').forEach(function(form) {
                form.addEventListener('submit', function(e) {
                    if (form.dataset.reload === 'true') {
                        return;
                    }
                    e.preventDefault();
                    fetch(form.action, {
                        method: 'POST',
                        headers: {'Accept': 'application/json'},
                        body: new URLSearchParams(new FormData(form))
                    }).then(function(resp) {
                        if (!resp.ok) { throw new Error(resp.statusText); }
                        return resp.json();
                    }).then(function(state) {
                        var target = document.getElementById(form.dataset.target);
                        if (target) {
                            target.classList.toggle('folded', state.folded);
                        }
                        document.querySelectorAll('form.fold-toggle[data-target="' + form.dataset.target + '"] input[name=folded]').forEach(function(input) {
                            input.value = state.folded ? 'false' : 'true';
                        });
                    }).catch(function() {
                        form.dataset.reload = 'true';
                        form.submit();
                    });
                });
            });
        });
    `
}

// GetBootstrapJS returns the Bootstrap JavaScript CDN URL
func GetBootstrapJS() string {
	return `https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/js/bootstrap.bundle.min.js`
}

// GetBootstrapJSIntegrity returns the integrity hash for Bootstrap JS
func GetBootstrapJSIntegrity() string {
	return `sha384-C6RzsynM9kWDrMNeT87bh95OGNyZPhcTNXj1NW7RuBCsyN/o0jlpcV8Qyq46cDfL`
}
