package rod

// snapshotScript stamps every element that directly owns text with
// "<snapshot>:<index>" and reports its presentation. Boxes are in document
// coordinates. Text skips descendants that are not rendered, hidden or
// aria-hidden, and block boundaries separate words.
const snapshotScript = `(snapshot) => {
	const mainSel = 'main, article, [role="main"]';
	const chromeSel = 'nav, footer, [role="navigation"], [role="contentinfo"]';
	const bannerSel = 'header, [role="banner"]';

	const ownsText = (el) => Array.from(el.childNodes).some(
		(n) => n.nodeType === Node.TEXT_NODE && n.textContent.trim() !== '');

	const renderedText = (el) => {
		const parts = [];
		const walk = (node, show) => {
			for (const c of node.childNodes) {
				if (c.nodeType === Node.TEXT_NODE) {
					if (show) parts.push(c.textContent);
					continue;
				}
				if (c.nodeType !== Node.ELEMENT_NODE) continue;
				if (c.getAttribute('aria-hidden') === 'true') continue;
				const cs = getComputedStyle(c);
				if (cs.display === 'none') continue;
				const block = c.tagName === 'BR' || !cs.display.startsWith('inline');
				if (block) parts.push(' ');
				walk(c, cs.visibility === 'visible' && parseFloat(cs.opacity) > 0);
				if (block) parts.push(' ');
			}
		};
		walk(el, true);
		return parts.join('').replace(/\s+/g, ' ').trim();
	};

	const opacityOf = (el) => {
		let o = 1;
		for (let p = el; p; p = p.parentElement) {
			o *= parseFloat(getComputedStyle(p).opacity);
		}
		return o;
	};

	const nodes = [];
	const root = document.body || document.documentElement;
	const walker = document.createTreeWalker(root, NodeFilter.SHOW_ELEMENT);
	for (let el = walker.currentNode; el; el = walker.nextNode()) {
		if (!ownsText(el)) continue;

		const cs = getComputedStyle(el);
		const rect = el.getBoundingClientRect();
		const banner = el.closest(bannerSel);
		const id = snapshot + ':' + nodes.length;
		el.setAttribute('data-clarify-node', id);

		nodes.push({
			id: id,
			tag: el.tagName.toLowerCase(),
			text: renderedText(el),
			box: {
				x: rect.left + window.scrollX,
				y: rect.top + window.scrollY,
				width: rect.width,
				height: rect.height,
			},
			style: {
				display: cs.display,
				visibility: cs.visibility,
				opacity: opacityOf(el),
				fontSize: parseFloat(cs.fontSize) || 0,
				ariaHidden: el.closest('[aria-hidden="true"]') !== null,
				rendered: el === document.body || el.offsetParent !== null || cs.position === 'fixed',
			},
			inMain: el.closest(mainSel) !== null,
			inChrome: el.closest(chromeSel) !== null || (banner !== null && banner.closest(mainSel) === null),
			headingLevel: /^H[1-6]$/.test(el.tagName) ? Number(el.tagName[1]) : 0,
		});
	}
	return nodes;
}`

const viewportScript = `() => ({
	scrollY: window.scrollY,
	height: window.innerHeight,
	documentHeight: document.documentElement.scrollHeight,
})`

const scrollScript = `(y) => {
	document.documentElement.style.scrollBehavior = 'auto';
	window.scrollTo(0, y);
}`

// highlightScript saves the style attribute the first time a node is
// highlighted. "S" prefixes a saved value, "N" marks a missing attribute.
const highlightScript = `(id, color, transition) => {
	const el = document.querySelector('[data-clarify-node="' + CSS.escape(id) + '"]');
	if (!el) return false;
	if (!el.hasAttribute('data-clarify-highlight')) {
		el.setAttribute('data-clarify-style', el.hasAttribute('style') ? 'S' + el.getAttribute('style') : 'N');
	}
	el.setAttribute('data-clarify-highlight', id);
	el.style.transition = transition;
	el.style.backgroundColor = color;
	return true;
}`

const clearScript = `(id) => {
	const el = document.querySelector('[data-clarify-highlight="' + CSS.escape(id) + '"]');
	if (!el) return false;
	const saved = el.getAttribute('data-clarify-style') || 'N';
	if (saved[0] === 'S') {
		el.setAttribute('style', saved.slice(1));
	} else {
		el.removeAttribute('style');
	}
	el.removeAttribute('data-clarify-style');
	el.removeAttribute('data-clarify-highlight');
	return true;
}`
